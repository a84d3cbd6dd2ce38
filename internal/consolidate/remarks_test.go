package consolidate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rezonia/invoice-issuer/internal/consolidate"
	"github.com/rezonia/invoice-issuer/internal/model"
)

func rentalLine(desc string, from, to int) model.ConsolidatedBillLine {
	return model.ConsolidatedBillLine{
		BillType:    model.BillTypeRental,
		Description: desc,
		PeriodFrom:  from,
		PeriodTo:    to,
	}
}

func TestResolveRemarks_FirstBillTemplate(t *testing.T) {
	got := consolidate.ResolveRemarks(model.RemarkSet{}, rentalLine("RENTAL", 20251124, 20251223))

	want := model.RemarkSet{"RENTAL", "for the period of", "2025/11/24 - 2025/12/23", ""}
	assert.Equal(t, want, got)
}

func TestResolveRemarks_SecondPeriodSlotsIntoLineFour(t *testing.T) {
	existing := model.RemarkSet{"RENTAL", "for the period of", "2025/11/24 - 2025/12/23", ""}

	got := consolidate.ResolveRemarks(existing, rentalLine("RENTAL", 20251224, 20260123))

	want := model.RemarkSet{"RENTAL", "for the period of", "2025/11/24 - 2025/12/23", "2025/12/24 - 2026/01/23"}
	assert.Equal(t, want, got)
}

func TestResolveRemarks_SamePeriodDoesNotDuplicate(t *testing.T) {
	existing := model.RemarkSet{"RENTAL", "for the period of", "2025/11/24 - 2025/12/23", ""}

	got := consolidate.ResolveRemarks(existing, rentalLine("RENTAL", 20251124, 20251223))

	assert.Equal(t, existing, got)
}

func TestResolveRemarks_OpenPeriodSlotFills(t *testing.T) {
	existing := model.RemarkSet{"RENTAL", "for the period of", "", ""}

	got := consolidate.ResolveRemarks(existing, rentalLine("RENTAL", 20251124, 20251223))

	want := model.RemarkSet{"RENTAL", "for the period of", "2025/11/24 - 2025/12/23", ""}
	assert.Equal(t, want, got)
}

func TestResolveRemarks_NewDescriptionShiftsIn(t *testing.T) {
	existing := model.RemarkSet{"RENTAL", "for the period of", "2025/11/24 - 2025/12/23", "2025/12/24 - 2026/01/23"}

	got := consolidate.ResolveRemarks(existing, rentalLine("CUSA", 20251124, 20251223))

	assert.Equal(t, "RENTAL / CUSA", got[0])
	assert.Equal(t, existing[1], got[1])
	assert.Equal(t, existing[2], got[2])
	assert.Equal(t, existing[3], got[3])
}

func TestResolveRemarks_PenaltyRules(t *testing.T) {
	penalty := model.ConsolidatedBillLine{
		BillType:    model.BillTypePenalty,
		Description: "PENALTY CHARGES",
		PeriodFrom:  20251124,
		PeriodTo:    20251223,
	}

	t.Run("empty set gets period caption", func(t *testing.T) {
		got := consolidate.ResolveRemarks(model.RemarkSet{}, penalty)
		want := model.RemarkSet{"PENALTY CHARGES", "for the period of", "2025/11/24 - 2025/12/23", ""}
		assert.Equal(t, want, got)
	})

	t.Run("existing penalty remark kept unchanged", func(t *testing.T) {
		existing := model.RemarkSet{"PENALTY CHARGES", "for the period of", "2025/10/24 - 2025/11/23", ""}
		got := consolidate.ResolveRemarks(existing, penalty)
		assert.Equal(t, existing, got)
	})

	t.Run("substantive remarks not displaced", func(t *testing.T) {
		existing := model.RemarkSet{"RENTAL", "for the period of", "2025/11/24 - 2025/12/23", ""}
		got := consolidate.ResolveRemarks(existing, penalty)
		assert.Equal(t, existing, got)
	})
}

func TestResolveRemarks_PrecedenceOrder(t *testing.T) {
	// A set matching both the open-slot rule and the shift rule must take
	// the open-slot rule: later rules only apply when earlier ones fail.
	existing := model.RemarkSet{"RENTAL", "for the period of", "", ""}

	got := consolidate.ResolveRemarks(existing, rentalLine("RENTAL", 20260101, 20260131))

	assert.Equal(t, "2026/01/01 - 2026/01/31", got[2])
	assert.Equal(t, "RENTAL", got[0])
}
