package permits

import (
	"strings"

	"github.com/sells-group/permit-leads/internal/model"
)

// Categorize maps a raw permit type onto a major work category.
func Categorize(permitType string) model.WorkCategory {
	if permitType == "" {
		return model.CategoryOther
	}
	upper := strings.ToUpper(permitType)

	switch {
	case strings.Contains(upper, "PLUMB"):
		return model.CategoryPlumbing
	case strings.Contains(upper, "MECH"):
		return model.CategoryMechanical
	case strings.Contains(upper, "SOLAR"):
		return model.CategorySolar
	case strings.Contains(upper, "SIGN"):
		return model.CategorySign
	case strings.Contains(upper, "WRECK"), strings.Contains(upper, "DEMO"):
		return model.CategoryWrecking
	case strings.Contains(upper, "SOIL"), strings.Contains(upper, "EROSION"):
		return model.CategorySoilErosion
	case strings.Contains(upper, "RES"), strings.Contains(upper, "COM"), strings.Contains(upper, "BLDG"):
		return model.CategoryBuilding
	default:
		return model.CategoryOther
	}
}

// FilterCategory keeps only records whose permit type falls in the given
// category. An empty category keeps everything.
func FilterCategory(records []model.PermitRecord, category model.WorkCategory) []model.PermitRecord {
	if category == "" {
		return records
	}
	var out []model.PermitRecord
	for _, r := range records {
		if Categorize(r.PermitType) == category {
			out = append(out, r)
		}
	}
	return out
}
