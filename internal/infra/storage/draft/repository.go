package draft

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ProposalService/internal/domain"
	"github.com/m04kA/SMC-ProposalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ProposalService/pkg/psqlbuilder"
)

// Repository репозиторий строк черновиков предложений.
// Одна строка proposal_drafts на производный идентификатор (query_id + draft_type).
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория черновиков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByKey получает черновик по ключу (queryId, draftType).
// NULL-колонки вложенных структур заменяются пустыми значениями по умолчанию:
// пустой маршрут, пустой список размещений, nil-наценка и ценовая
// конфигурация separate/15/10/25.
func (r *Repository) GetByKey(ctx context.Context, queryID string, draftType domain.DraftType) (*domain.DraftRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	key := domain.DraftKey{QueryID: queryID, DraftType: draftType}

	query, args, err := psqlbuilder.Select(
		"itinerary_days",
		"accommodation",
		"pricing",
		"email",
		"terms",
		"inclusions",
		"exclusions",
		"version",
		"last_saved",
	).
		From("proposal_drafts").
		Where(squirrel.Eq{"proposal_id": key.ProposalID()}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - build select query: %v", ErrBuildQuery, err)
	}

	var (
		itineraryRaw     []byte
		accommodationRaw []byte
		pricingRaw       []byte
		emailRaw         []byte
		terms            sql.NullString
		inclusionsRaw    []byte
		exclusionsRaw    []byte
		version          int64
		lastSaved        sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&itineraryRaw,
		&accommodationRaw,
		&pricingRaw,
		&emailRaw,
		&terms,
		&inclusionsRaw,
		&exclusionsRaw,
		&version,
		&lastSaved,
	)

	if err == sql.ErrNoRows {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - scan draft: %v", ErrScanRow, err)
	}

	record := domain.NewDraftRecord(queryID, draftType)
	record.Version = version
	record.LastSaved = lastSaved.Time

	if itineraryRaw != nil {
		if err := json.Unmarshal(itineraryRaw, &record.ItineraryDays); err != nil {
			return nil, fmt.Errorf("%w: GetByKey - itinerary_days: %v", ErrDecode, err)
		}
	}

	if accommodationRaw != nil {
		var column AccommodationColumn
		if err := json.Unmarshal(accommodationRaw, &column); err != nil {
			return nil, fmt.Errorf("%w: GetByKey - accommodation: %v", ErrDecode, err)
		}
		if column.Selections != nil {
			record.AccommodationSelections = column.Selections
		}
		record.MarkupData = column.Markup
	}

	if pricingRaw != nil {
		if err := json.Unmarshal(pricingRaw, &record.PricingConfig); err != nil {
			return nil, fmt.Errorf("%w: GetByKey - pricing: %v", ErrDecode, err)
		}
	}

	if emailRaw != nil {
		if err := json.Unmarshal(emailRaw, &record.EmailDraft); err != nil {
			return nil, fmt.Errorf("%w: GetByKey - email: %v", ErrDecode, err)
		}
	}

	if terms.Valid && terms.String != "" {
		var text termsText
		if err := json.Unmarshal([]byte(terms.String), &text); err != nil {
			return nil, fmt.Errorf("%w: GetByKey - terms: %v", ErrDecode, err)
		}
		record.TermsConditions.PaymentTerms = text.PaymentTerms
		record.TermsConditions.CancellationPolicy = text.CancellationPolicy
		record.TermsConditions.Notes = text.Notes
	}

	if inclusionsRaw != nil {
		if err := json.Unmarshal(inclusionsRaw, &record.TermsConditions.Inclusions); err != nil {
			return nil, fmt.Errorf("%w: GetByKey - inclusions: %v", ErrDecode, err)
		}
	}
	if exclusionsRaw != nil {
		if err := json.Unmarshal(exclusionsRaw, &record.TermsConditions.Exclusions); err != nil {
			return nil, fmt.Errorf("%w: GetByKey - exclusions: %v", ErrDecode, err)
		}
	}

	return record, nil
}

// Patch применяет частичное обновление строки черновика.
// Выполняется как явный upsert: первый save по неизвестному ключу
// материализует строку. Обновляются только переданные секции.
// Сохраненная версия никогда не понижается: устаревший patch
// отбрасывается с ErrVersionConflict.
func (r *Repository) Patch(ctx context.Context, queryID string, draftType domain.DraftType, patch *Patch) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	key := domain.DraftKey{QueryID: queryID, DraftType: draftType}

	itineraryJSON, err := marshalNullable(patch.ItineraryDays)
	if err != nil {
		return fmt.Errorf("%w: Patch - itinerary_days: %v", ErrEncode, err)
	}
	accommodationJSON, err := marshalNullable(patch.Accommodation)
	if err != nil {
		return fmt.Errorf("%w: Patch - accommodation: %v", ErrEncode, err)
	}
	pricingJSON, err := marshalNullable(patch.Pricing)
	if err != nil {
		return fmt.Errorf("%w: Patch - pricing: %v", ErrEncode, err)
	}
	emailJSON, err := marshalNullable(patch.Email)
	if err != nil {
		return fmt.Errorf("%w: Patch - email: %v", ErrEncode, err)
	}
	inclusionsJSON, err := marshalNullable(patch.Inclusions)
	if err != nil {
		return fmt.Errorf("%w: Patch - inclusions: %v", ErrEncode, err)
	}
	exclusionsJSON, err := marshalNullable(patch.Exclusions)
	if err != nil {
		return fmt.Errorf("%w: Patch - exclusions: %v", ErrEncode, err)
	}

	var termsValue interface{}
	if patch.Terms != nil {
		termsValue = *patch.Terms
	}

	// Собираем SET-часть DO UPDATE только из переданных секций
	sets := make([]string, 0, 9)
	if patch.ItineraryDays != nil {
		sets = append(sets, "itinerary_days = EXCLUDED.itinerary_days")
	}
	if patch.Accommodation != nil {
		sets = append(sets, "accommodation = EXCLUDED.accommodation")
	}
	if patch.Pricing != nil {
		sets = append(sets, "pricing = EXCLUDED.pricing")
	}
	if patch.Email != nil {
		sets = append(sets, "email = EXCLUDED.email")
	}
	if patch.Terms != nil {
		sets = append(sets, "terms = EXCLUDED.terms")
	}
	if patch.Inclusions != nil {
		sets = append(sets, "inclusions = EXCLUDED.inclusions")
	}
	if patch.Exclusions != nil {
		sets = append(sets, "exclusions = EXCLUDED.exclusions")
	}
	sets = append(sets, "version = EXCLUDED.version", "last_saved = EXCLUDED.last_saved", "updated_at = NOW()")

	conflictSuffix := fmt.Sprintf(
		"ON CONFLICT (proposal_id) DO UPDATE SET %s WHERE proposal_drafts.version <= EXCLUDED.version",
		strings.Join(sets, ", "),
	)

	query, args, err := psqlbuilder.Insert("proposal_drafts").
		Columns(
			"proposal_id",
			"query_id",
			"draft_type",
			"itinerary_days",
			"accommodation",
			"pricing",
			"email",
			"terms",
			"inclusions",
			"exclusions",
			"version",
			"last_saved",
		).
		Values(
			key.ProposalID(),
			queryID,
			draftType,
			itineraryJSON,
			accommodationJSON,
			pricingJSON,
			emailJSON,
			termsValue,
			inclusionsJSON,
			exclusionsJSON,
			patch.Version,
			patch.LastSaved,
		).
		Suffix(conflictSuffix).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Patch - build upsert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Patch - execute upsert: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Patch - get rows affected: %v", ErrExecQuery, err)
	}

	// Ноль затронутых строк означает, что сохраненная версия новее
	if rowsAffected == 0 {
		return ErrVersionConflict
	}

	return nil
}

// marshalNullable сериализует секцию в jsonb-значение, nil остается NULL
func marshalNullable(v interface{}) (interface{}, error) {
	switch value := v.(type) {
	case nil:
		return nil, nil
	case *[]domain.ItineraryDay:
		if value == nil {
			return nil, nil
		}
		return json.Marshal(*value)
	case *AccommodationColumn:
		if value == nil {
			return nil, nil
		}
		return json.Marshal(value)
	case *domain.PricingConfig:
		if value == nil {
			return nil, nil
		}
		return json.Marshal(value)
	case *domain.EmailDraft:
		if value == nil {
			return nil, nil
		}
		return json.Marshal(value)
	case *[]string:
		if value == nil {
			return nil, nil
		}
		return json.Marshal(*value)
	default:
		return json.Marshal(v)
	}
}
