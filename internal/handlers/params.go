package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"blogger/internal/apperr"

	"github.com/gorilla/mux"
)

// pathID reads an integer path variable. Routes only match digits, so 0 and
// values past int64 are ids that cannot exist; they come back as 0 and the
// lookup reports not found.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, nil
	}
	if err != nil || id < 0 {
		return 0, apperr.Validation("Invalid id", name+" must be a non-negative integer", name)
	}
	return id, nil
}
