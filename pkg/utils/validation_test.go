package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type submitForm struct {
	Name      string   `validate:"required,min=2,max=200"`
	Category  string   `validate:"required,max=100"`
	Condition string   `validate:"required,oneof=new used refurbished"`
	Price     *float64 `validate:"required,gte=0"`
	Phone     string   `validate:"required,min=6,max=16"`
	Region    string   `validate:"required,max=100"`
	Locality  string   `validate:"required,max=100"`
}

func TestValidateStruct_Valid(t *testing.T) {
	price := 120.0
	form := submitForm{
		Name:      "Solar panel 300W",
		Category:  "panels",
		Condition: "new",
		Price:     &price,
		Phone:     "1234567",
		Region:    "North",
		Locality:  "Riverside",
	}

	assert.Empty(t, ValidateStruct(form))
}

func TestValidateStruct_ReportsFieldsInDeclarationOrder(t *testing.T) {
	// Everything missing: errors come back in struct declaration order.
	errs := ValidateStruct(submitForm{})

	assert.Len(t, errs, 7)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "category", errs[1].Field)
	assert.Equal(t, "condition", errs[2].Field)
	assert.Equal(t, "price", errs[3].Field)
	assert.Equal(t, "phone", errs[4].Field)
	assert.Equal(t, "region", errs[5].Field)
	assert.Equal(t, "locality", errs[6].Field)
}

func TestValidateStruct_FirstErrorWinsOverLaterFields(t *testing.T) {
	price := 50.0
	form := submitForm{
		Name:      "X", // too short
		Category:  "panels",
		Condition: "broken", // not in oneof
		Price:     &price,
		Phone:     "1234567",
		Region:    "North",
		Locality:  "Riverside",
	}

	errs := ValidateStruct(form)

	assert.Len(t, errs, 2)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "Minimum length is 2", errs[0].Message)
	assert.Equal(t, "name: Minimum length is 2", FirstValidationMessage(errs))
}

func TestValidateStruct_OneofMessage(t *testing.T) {
	price := 50.0
	form := submitForm{
		Name:      "Solar panel",
		Category:  "panels",
		Condition: "broken",
		Price:     &price,
		Phone:     "1234567",
		Region:    "North",
		Locality:  "Riverside",
	}

	errs := ValidateStruct(form)

	assert.Len(t, errs, 1)
	assert.Equal(t, "condition", errs[0].Field)
	assert.Equal(t, "Must be one of: new, used, refurbished", errs[0].Message)
}

func TestFieldErrorMap(t *testing.T) {
	errs := []FieldError{
		{Field: "name", Message: "This field is required"},
		{Field: "phone", Message: "Minimum length is 6"},
	}

	m := FieldErrorMap(errs)

	assert.Equal(t, "This field is required", m["name"])
	assert.Equal(t, "Minimum length is 6", m["phone"])
	assert.Nil(t, FieldErrorMap(nil))
}

func TestFirstValidationMessage_Empty(t *testing.T) {
	assert.Equal(t, "", FirstValidationMessage(nil))
}
