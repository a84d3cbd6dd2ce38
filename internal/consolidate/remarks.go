package consolidate

import (
	"strings"

	"github.com/rezonia/invoice-issuer/internal/model"
)

// PeriodCaption is the fixed second remark line.
const PeriodCaption = "for the period of"

// ResolveRemarks folds one more bill into an invoice's four remark lines.
//
// Rules are evaluated in precedence order; a later rule applies only when
// every earlier one fails:
//
//  1. Penalty bills never displace substantive remarks. If line 1 already
//     denotes a penalty the set is unchanged; on an otherwise empty set the
//     penalty gets the period-based caption.
//  2. If lines 1/2 hold the new bill's description over the caption with the
//     period still unset, the new period slots into position 3.
//  3. If lines 2/3 hold the caption over a period, a second, different
//     period slots into position 4.
//  4. Otherwise the description shifts into line 1 (joined to any existing
//     description), defaulting to the four-line template
//     [description, caption, period, ""] when no remarks exist yet.
func ResolveRemarks(existing model.RemarkSet, line model.ConsolidatedBillLine) model.RemarkSet {
	desc := strings.TrimSpace(line.Description)
	period := line.Period()

	// Rule 1: penalty bills.
	if line.BillType == model.BillTypePenalty {
		if denotesPenalty(existing[0]) {
			return existing
		}
		if existing[0] != "" {
			return existing
		}
		return model.RemarkSet{desc, PeriodCaption, period, ""}
	}

	// Rule 2: caption present, period slot open.
	if existing[0] == desc && existing[1] == PeriodCaption && existing[2] == "" {
		return model.RemarkSet{existing[0], existing[1], period, existing[3]}
	}

	// Rule 3: caption and first period present, second period slot open.
	if existing[1] == PeriodCaption && existing[2] != "" && existing[2] != period && existing[3] == "" {
		return model.RemarkSet{existing[0], existing[1], existing[2], period}
	}

	// Rule 4: shift the description in.
	if existing == (model.RemarkSet{}) {
		return model.RemarkSet{desc, PeriodCaption, period, ""}
	}
	if desc != "" && !strings.Contains(existing[0], desc) {
		return model.RemarkSet{existing[0] + " / " + desc, existing[1], existing[2], existing[3]}
	}
	return existing
}

func denotesPenalty(s string) bool {
	return strings.Contains(strings.ToUpper(s), "PENALTY")
}
