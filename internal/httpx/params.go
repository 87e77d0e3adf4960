package httpx

import (
	"net/http"
	"strconv"
)

// PathID parses an integer path parameter registered on the route pattern.
func PathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}
