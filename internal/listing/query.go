package listing

import (
	"net/url"
	"strconv"
)

// Query parameter names shared by every list endpoint.
const (
	ParamSearch   = "q"
	ParamStatus   = "status"
	ParamCategory = "category_id"
	ParamMaxPrice = "max_price"
	ParamSort     = "sort"
	ParamPage     = "page"
	ParamPageSize = "page_size"
)

// StateFromQuery binds URL query parameters to a State. Malformed or
// out-of-range values fall back to the cleared state rather than failing,
// so a list request never returns a client error for its filter inputs.
func StateFromQuery(q url.Values) State {
	st := NewState()
	st.Search = q.Get(ParamSearch)
	st.Status = q.Get(ParamStatus)
	st.Sort = SortKey(q.Get(ParamSort))

	if v := q.Get(ParamCategory); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil && id > 0 {
			st.CategoryID = id
		}
	}
	if v := q.Get(ParamMaxPrice); v != "" {
		if max, err := strconv.ParseFloat(v, 64); err == nil && max >= 0 {
			st.MaxPrice = &max
		}
	}
	if v := q.Get(ParamPage); v != "" {
		if page, err := strconv.Atoi(v); err == nil && page >= 1 {
			st.Page = page
		}
	}
	if v := q.Get(ParamPageSize); v != "" {
		if size, err := strconv.Atoi(v); err == nil && size >= 1 {
			if size > MaxPageSize {
				size = MaxPageSize
			}
			st.PageSize = size
		}
	}
	return st
}
