package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-food-keeper/models"
)

const foodsTable = "foods"

// foodColumns is the column order every SELECT and RETURNING clause uses;
// scanFood reads them in the same order.
var foodColumns = []string{
	"id",
	"tier",
	"owner_id",
	"name",
	"serving_size_value",
	"serving_size_unit",
	"calories",
	"total_fat",
	"carbohydrates",
	"fiber",
	"sugars",
	"protein",
	"cholesterol",
	"sodium",
	"barcode",
	"source",
	"created_at",
}

const (
	// private before community before system
	tierRankOrder = "CASE tier WHEN 'private' THEN 0 WHEN 'community' THEN 1 ELSE 2 END"

	nameMatch = "LOWER(name) LIKE LOWER(?) ESCAPE '\\'"

	contributeOnConflict = "ON CONFLICT (barcode) WHERE tier = 'community' AND barcode IS NOT NULL DO NOTHING"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a substring pattern with LIKE wildcards in s escaped.
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(s)) + "%"
}

func returningFoodColumns() string {
	return "RETURNING " + strings.Join(foodColumns, ", ")
}

// ownedBy selects the private rows of userID.
func ownedBy(userID string) sq.And {
	return sq.And{
		sq.Eq{"owner_id": userID},
		sq.Eq{"tier": string(models.TierPrivate)},
	}
}

// visibleTo selects the rows userID may read: own private rows plus every
// community and system row.
func visibleTo(userID string) sq.Or {
	return sq.Or{
		ownedBy(userID),
		sq.Eq{"tier": []string{string(models.TierCommunity), string(models.TierSystem)}},
	}
}

func buildFindByBarcodeQuery(b sq.StatementBuilderType, code, userID string) (string, []any, error) {
	return b.Select(foodColumns...).
		From(foodsTable).
		Where(sq.Eq{"barcode": code}).
		Where(sq.Or{
			ownedBy(userID),
			sq.Eq{"tier": string(models.TierCommunity)},
		}).
		OrderBy(tierRankOrder).
		Limit(1).
		ToSql()
}

func buildSearchQuery(b sq.StatementBuilderType, query models.SearchQuery) (string, []any, error) {
	var scope sq.Sqlizer
	switch query.Filter {
	case models.FilterPrivate:
		scope = ownedBy(query.UserID)
	case models.FilterSystem:
		scope = sq.Eq{"tier": string(models.TierSystem)}
	case models.FilterCommunity:
		scope = sq.Eq{"tier": string(models.TierCommunity)}
	case models.FilterAll, "":
		scope = sq.Or{ownedBy(query.UserID), sq.Eq{"tier": string(models.TierSystem)}}
	default:
		return "", nil, fmt.Errorf("unknown search filter %q", query.Filter)
	}

	return b.Select(foodColumns...).
		From(foodsTable).
		Where(scope).
		Where(sq.Expr(nameMatch, likePattern(query.Query))).
		OrderBy(tierRankOrder, "LOWER(name)", "id").
		Limit(uint64(query.Limit)).
		ToSql()
}

func buildListRecentQuery(b sq.StatementBuilderType, userID string, limit int) (string, []any, error) {
	return b.Select(foodColumns...).
		From(foodsTable).
		Where(ownedBy(userID)).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
}

func buildGetByIDQuery(b sq.StatementBuilderType, userID, id string) (string, []any, error) {
	return b.Select(foodColumns...).
		From(foodsTable).
		Where(sq.Eq{"id": id}).
		Where(visibleTo(userID)).
		ToSql()
}

func buildCountQuery(b sq.StatementBuilderType, userID string, tier models.Tier) (string, []any, error) {
	var scope sq.Sqlizer
	switch tier {
	case models.TierPrivate:
		scope = ownedBy(userID)
	case models.TierCommunity, models.TierSystem:
		scope = sq.Eq{"tier": string(tier)}
	default:
		return "", nil, fmt.Errorf("%w: %q", ErrUnsupportedTier, tier)
	}

	return b.Select("COUNT(*)").From(foodsTable).Where(scope).ToSql()
}

// buildInsertQuery inserts rec with every column set explicitly.
func buildInsertQuery(b sq.StatementBuilderType, rec models.NutritionRecord) sq.InsertBuilder {
	return b.Insert(foodsTable).
		Columns(foodColumns...).
		Values(
			rec.ID,
			string(rec.Tier),
			rec.OwnerID,
			rec.Name,
			rec.ServingSize.Value,
			string(rec.ServingSize.Unit),
			rec.Calories,
			rec.TotalFat,
			rec.Carbohydrates,
			rec.Fiber,
			rec.Sugars,
			rec.Protein,
			rec.Cholesterol,
			rec.Sodium,
			rec.Barcode,
			string(rec.Source),
			rec.CreatedAt,
		)
}

func buildContributeQuery(b sq.StatementBuilderType, rec models.NutritionRecord) (string, []any, error) {
	return buildInsertQuery(b, rec).
		Suffix(contributeOnConflict + " " + returningFoodColumns()).
		ToSql()
}

func buildCommunityByBarcodeQuery(b sq.StatementBuilderType, code string) (string, []any, error) {
	return b.Select(foodColumns...).
		From(foodsTable).
		Where(sq.Eq{"tier": string(models.TierCommunity), "barcode": code}).
		ToSql()
}

// buildUpdateQuery builds a partial UPDATE of a private row owned by userID.
// Only non-nil fields of update are set. An empty barcode clears it.
func buildUpdateQuery(b sq.StatementBuilderType, userID, id string, update models.FoodUpdate) (string, []any, error) {
	set := make(map[string]any, 12)

	if update.Name != nil {
		set["name"] = strings.TrimSpace(*update.Name)
	}
	if update.ServingSizeValue != nil {
		set["serving_size_value"] = *update.ServingSizeValue
	}
	if update.ServingSizeUnit != nil {
		set["serving_size_unit"] = string(*update.ServingSizeUnit)
	}
	if update.Calories != nil {
		set["calories"] = *update.Calories
	}
	if update.TotalFat != nil {
		set["total_fat"] = *update.TotalFat
	}
	if update.Carbohydrates != nil {
		set["carbohydrates"] = *update.Carbohydrates
	}
	if update.Fiber != nil {
		set["fiber"] = *update.Fiber
	}
	if update.Sugars != nil {
		set["sugars"] = *update.Sugars
	}
	if update.Protein != nil {
		set["protein"] = *update.Protein
	}
	if update.Cholesterol != nil {
		set["cholesterol"] = *update.Cholesterol
	}
	if update.Sodium != nil {
		set["sodium"] = *update.Sodium
	}
	if update.Barcode != nil {
		set["barcode"] = barcodeOrNil(update.Barcode)
	}

	if len(set) == 0 {
		return "", nil, fmt.Errorf("%w: no fields to update", ErrBuildingSQLQuery)
	}

	return b.Update(foodsTable).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Where(ownedBy(userID)).
		Suffix(returningFoodColumns()).
		ToSql()
}

func buildDeleteQuery(b sq.StatementBuilderType, userID, id string) (string, []any, error) {
	return b.Delete(foodsTable).
		Where(sq.Eq{"id": id}).
		Where(ownedBy(userID)).
		ToSql()
}

// barcodeOrNil trims a barcode and maps an empty value to NULL.
func barcodeOrNil(code *string) *string {
	if code == nil {
		return nil
	}
	trimmed := models.NormalizeBarcode(*code)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
