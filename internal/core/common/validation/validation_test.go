package validation_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	apperrors "hrportal/internal"
	"hrportal/internal/core/common/validation"
)

func TestValidation(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Validation Suite")
}

var _ = Describe("ValidationBuilder", func() {
	It("should pass when all rules hold", func() {
		v := validation.NewValidator()
		v.Field("name", "Jane").Required().MaxLength(60)
		v.Field("zip", int64(97201)).Required().IntRange(1000, 99999)
		Expect(v.Validate()).To(BeNil())
	})

	It("should aggregate failures across fields", func() {
		v := validation.NewValidator()
		v.Field("name", "").Required()
		v.Field("zip", int64(10)).IntRange(1000, 99999)
		err := v.Validate()
		Expect(err).NotTo(BeNil())

		details, ok := err.Details.(apperrors.ValidationErrors)
		Expect(ok).To(BeTrue())
		Expect(details.Errors).To(HaveLen(2))
	})

	Describe("ExactDigits", func() {
		It("should accept exactly nine digits", func() {
			Expect(validation.ValidateBankNumber("account_number", "123456789")).To(BeNil())
		})

		It("should keep leading zeros valid", func() {
			Expect(validation.ValidateBankNumber("account_number", "000123456")).To(BeNil())
		})

		It("should reject a short value", func() {
			Expect(validation.ValidateBankNumber("account_number", "12345")).NotTo(BeNil())
		})

		It("should reject non-digit characters", func() {
			Expect(validation.ValidateBankNumber("routing_number", "12345678x")).NotTo(BeNil())
		})
	})

	Describe("ValidateZIP", func() {
		It("should accept the bounds of the range", func() {
			Expect(validation.ValidateZIP(1000)).To(BeNil())
			Expect(validation.ValidateZIP(99999)).To(BeNil())
		})

		It("should reject values outside the range", func() {
			Expect(validation.ValidateZIP(999)).NotTo(BeNil())
			Expect(validation.ValidateZIP(100000)).NotTo(BeNil())
		})
	})

	Describe("OneOf", func() {
		It("should accept listed values only", func() {
			v := validation.NewValidator()
			v.Field("account_type", "Checking").OneOf("Checking", "Savings")
			Expect(v.Validate()).To(BeNil())

			v = validation.NewValidator()
			v.Field("account_type", "checking").OneOf("Checking", "Savings")
			Expect(v.Validate()).NotTo(BeNil())
		})
	})

	Describe("NonNegativeFloat", func() {
		It("should accept zero", func() {
			v := validation.NewValidator()
			v.Field("net_pay", float64(0)).NonNegativeFloat()
			Expect(v.Validate()).To(BeNil())
		})

		It("should reject negative values", func() {
			v := validation.NewValidator()
			v.Field("net_pay", float64(-0.01)).NonNegativeFloat()
			Expect(v.Validate()).NotTo(BeNil())
		})
	})
})
