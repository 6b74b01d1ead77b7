package dto

import (
	"testing"

	helper "swaram_backend/internals/helpers"
)

func TestFeeStructureUpsertValidation(t *testing.T) {
	tests := []struct {
		name    string
		in      FeeStructureUpsertDTO
		wantErr bool
	}{
		{"nil rows", FeeStructureUpsertDTO{}, true},
		{"empty rows", FeeStructureUpsertDTO{Rows: []FeeStructureUpsertRow{}}, true},
		{"zero fee", FeeStructureUpsertDTO{Rows: []FeeStructureUpsertRow{
			{YearNumber: 1, TotalFee: 0},
		}}, true},
		{"valid", FeeStructureUpsertDTO{Rows: []FeeStructureUpsertRow{
			{YearNumber: 1, TotalFee: 25000},
			{YearNumber: 2, TotalFee: 30000},
		}}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := helper.Validate.Struct(tc.in)
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate(%+v) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
		})
	}
}
