package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ledgerscope/explorer-analytics/internal/types"
)

const (
	startTimeParam = "start_time"
	endTimeParam   = "end_time"
)

// parseOptionalInt64 returns nil when key is absent or blank
func parseOptionalInt64(query url.Values, key string) (*int64, *types.Error) {
	raw := strings.TrimSpace(query.Get(key))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest,
			types.BadRequest,
			fmt.Sprintf("%s must be an integer number of epoch seconds", key),
		)
	}
	return &v, nil
}

// parseTimeWindow reads start_time and end_time. Any ordering of the two is
// accepted, an empty or inverted window just counts nothing.
func parseTimeWindow(query url.Values) (types.TimeWindow, *types.Error) {
	start, err := parseOptionalInt64(query, startTimeParam)
	if err != nil {
		return types.TimeWindow{}, err
	}
	end, err := parseOptionalInt64(query, endTimeParam)
	if err != nil {
		return types.TimeWindow{}, err
	}
	return types.TimeWindow{Start: start, End: end}, nil
}
