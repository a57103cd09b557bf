//Package algoutil contain some scaffold http helpers
package algoutil

import (
	"encoding/json"
	"net/http"
)

// AccessControl allows browser clients on any origin to call the API.
func AccessControl(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, Accept-Language")

		h.ServeHTTP(w, r)
	})
}

// OptionControl answers CORS preflight requests without reaching h.
func OptionControl(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			json.NewEncoder(w).Encode(map[string]interface{}{"code": 0, "data": "success"})
			return
		}

		h.ServeHTTP(w, r)
	})
}
