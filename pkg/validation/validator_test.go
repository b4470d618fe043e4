package validation

import (
	"errors"
	"testing"
)

type sampleRow struct {
	Name string `validate:"required"`
	Age  *int   `validate:"required,gte=0,lte=130"`
}

func intPtr(v int) *int { return &v }

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		row     sampleRow
		wantErr bool
		field   string
		tag     string
	}{
		{"valid", sampleRow{Name: "a", Age: intPtr(71)}, false, "", ""},
		{"zero age is valid", sampleRow{Name: "a", Age: intPtr(0)}, false, "", ""},
		{"missing name", sampleRow{Age: intPtr(60)}, true, "Name", "required"},
		{"missing age", sampleRow{Name: "a"}, true, "Age", "required"},
		{"negative age", sampleRow{Name: "a", Age: intPtr(-1)}, true, "Age", "gte"},
		{"absurd age", sampleRow{Name: "a", Age: intPtr(200)}, true, "Age", "lte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.row)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}
			var fe *FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("expected *FieldError, got %T", err)
			}
			if fe.Field != tt.field || fe.Tag != tt.tag {
				t.Errorf("FieldError = %+v, want field %s tag %s", fe, tt.field, tt.tag)
			}
		})
	}
}

func TestValidateStruct_Nil(t *testing.T) {
	if err := ValidateStruct(nil); err == nil {
		t.Error("expected error for nil")
	}
}

func TestFieldErrorMessages(t *testing.T) {
	cases := map[string]*FieldError{
		"Age: field is required":     {Field: "Age", Tag: "required"},
		"Age: must be at least 0":    {Field: "Age", Tag: "gte", Param: "0"},
		"Age: must not exceed 130":   {Field: "Age", Tag: "lte", Param: "130"},
		"Age: validation failed (x)": {Field: "Age", Tag: "x"},
	}
	for want, fe := range cases {
		if fe.Error() != want {
			t.Errorf("Error() = %q, want %q", fe.Error(), want)
		}
	}
}
