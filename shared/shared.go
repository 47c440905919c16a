package shared

import (
	"context"
	"crypto/sha1" //nolint:gosec
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// ParseID parses a positive integer identifier taken from a path or body.
func ParseID(value, name string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString(fmt.Sprintf("Invalid %s.", name)) //nolint:wrapcheck
	}

	return id, nil
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the fields of a struct into a map of updated fields.
func TransformFields(data interface{}, username string) map[string]any {
	updatedFields := ChangedFields(data)

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

// ChangedFields returns the non-zero db-tagged fields of a struct.
func ChangedFields(data interface{}) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	if val.Kind() == reflect.Pointer {
		val = val.Elem()
		typ = typ.Elem()
	}

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	return updatedFields
}

// IsEmptyUpdate reports whether an update request carries no field to change.
func IsEmptyUpdate(data interface{}) bool {
	return len(ChangedFields(data)) == 0
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + ":" + strings.Join(parts, ":")
}

// BuildCacheKeyWithQuery derives a stable key from the query params and filters.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	raw, err := json.Marshal(struct {
		Params dto.QueryParams `json:"params"`
		Filter dto.FilterGroup `json:"filter"`
	}{params, filter})
	if err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to marshal cache key payload")

		return BuildCacheKey(prefix, "raw", fmt.Sprintf("%v", params))
	}

	sum := sha1.Sum(raw) //nolint:gosec

	return BuildCacheKey(prefix, hex.EncodeToString(sum[:]))
}

// InvalidateCaches removes every key under the prefix.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// ConstraintMessages holds the client messages used when a write trips a database constraint.
type ConstraintMessages struct {
	Unique     string
	ForeignKey string
	Exclusion  string
}

// TranslateWriteError maps constraint violations on insert or update to client failures.
// Unique and exclusion violations become 409, foreign-key violations 400.
func TranslateWriteError(err error, msgs ConstraintMessages) error {
	switch PqErrorCode(err) {
	case constant.PqErrorCodeUniqueViolation:
		return failure.Conflict(orDefault(msgs.Unique, "Resource already exists.")) //nolint:wrapcheck
	case constant.PqErrorCodeFkViolation:
		return failure.BadRequestFromString(orDefault(msgs.ForeignKey, "Referenced record does not exist.")) //nolint:wrapcheck
	case constant.PqErrorCodeExclusionViolation:
		return failure.Conflict(orDefault(msgs.Exclusion, "Resource conflicts with an existing record.")) //nolint:wrapcheck
	default:
		return err
	}
}

// TranslateDeleteError maps a delete blocked by dependent rows to 409.
func TranslateDeleteError(err error, message string) error {
	if PqErrorCode(err) == constant.PqErrorCodeFkViolation {
		return failure.Conflict(message) //nolint:wrapcheck
	}

	return err
}

func orDefault(value, fallback string) string {
	if value == constant.Empty {
		return fallback
	}

	return value
}

// PqErrorCode returns the SQLSTATE of a wrapped postgres error, or an empty string.
func PqErrorCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}

	return constant.Empty
}

func GetUserID(ctx context.Context) string {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return user
}

func GetUserRole(ctx context.Context) string {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	return role
}

// GetActor returns the name recorded in the audit columns for the current principal.
func GetActor(ctx context.Context) string {
	role := GetUserRole(ctx)
	user := GetUserID(ctx)

	if role == constant.Empty || user == constant.Empty {
		return constant.ContextSystem
	}

	return role + ":" + user
}

// AuthorizeGuest allows admins and internal callers through, and guests only for their own id.
func AuthorizeGuest(ctx context.Context, guestID int64) error {
	role := GetUserRole(ctx)

	switch role {
	case constant.RoleGuest:
		if GetUserID(ctx) != strconv.FormatInt(guestID, 10) {
			return failure.ResourceRestrictedError
		}

		return nil
	case constant.RoleAdmin, constant.Empty:
		return nil
	default:
		return failure.ForbiddenError
	}
}

// NullString maps an optional request string onto a nullable column. Blank values become NULL.
func NullString(value *string) sql.NullString {
	if value == nil || strings.TrimSpace(*value) == constant.Empty {
		return sql.NullString{}
	}

	return sql.NullString{String: strings.TrimSpace(*value), Valid: true}
}

func NullInt64(value *int64) sql.NullInt64 {
	if value == nil {
		return sql.NullInt64{}
	}

	return sql.NullInt64{Int64: *value, Valid: true}
}

func StringPtr(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}

	return &value.String
}

func Int64Ptr(value sql.NullInt64) *int64 {
	if !value.Valid {
		return nil
	}

	return &value.Int64
}

func Float64Ptr(value sql.NullFloat64) *float64 {
	if !value.Valid {
		return nil
	}

	return &value.Float64
}
