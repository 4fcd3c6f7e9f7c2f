package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"kuchi/restaurant-svc/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const maxBodyBytes = 8 << 20

var validate = validator.New()

// decode reads a JSON body into dst and runs its validate tags.
func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed body: %v", domain.ErrInvalidInput, err)
	}
	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("%w: %s failed on %s", domain.ErrInvalidInput, fe.Field(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

func pathID(r *http.Request, name string) (string, error) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		return "", fmt.Errorf("%w: %s must be a uuid", domain.ErrInvalidInput, name)
	}
	return id.String(), nil
}

func queryID(r *http.Request, name string) (string, error) {
	id, err := uuid.Parse(r.URL.Query().Get(name))
	if err != nil {
		return "", fmt.Errorf("%w: %s must be a uuid", domain.ErrInvalidInput, name)
	}
	return id.String(), nil
}

func listQuery(r *http.Request) (domain.ListQuery, error) {
	q := domain.ListQuery{Page: 1, Search: r.URL.Query().Get("search")}
	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return q, fmt.Errorf("%w: page must be a positive integer", domain.ErrInvalidInput)
		}
		q.Page = page
	}
	return q, nil
}

func validMoney(m *domain.Money) error {
	if m == nil || *m < 0 {
		return fmt.Errorf("%w: price must be a non-negative amount", domain.ErrInvalidInput)
	}
	return nil
}
