// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package budget

import (
	"testing"

	"github.com/MKhiriev/go-budget-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestNewRolloverLine(t *testing.T) {
	tests := []struct {
		name       string
		balance    string
		wantKind   models.Kind
		wantAmount string
	}{
		{name: "surplus", balance: "350.25", wantKind: models.KindIncome, wantAmount: "350.25"},
		{name: "zero", balance: "0", wantKind: models.KindIncome, wantAmount: "0"},
		{name: "deficit", balance: "-90", wantKind: models.KindExpense, wantAmount: "90"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRolloverLine("b-42", dec(tt.balance))

			assert.Equal(t, "rollover-b-42", r.GetID())
			assert.Equal(t, tt.wantKind, r.GetKind())
			assert.True(t, r.GetAmount().Equal(dec(tt.wantAmount)))
			assert.True(t, IsRolloverLineID(r.GetID()))
		})
	}
}

func TestIsRolloverLineID(t *testing.T) {
	assert.True(t, IsRolloverLineID("rollover-"))
	assert.False(t, IsRolloverLineID("line-rollover-1"))
	assert.False(t, IsRolloverLineID(""))
}
