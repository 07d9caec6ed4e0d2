// Package respond provides RFC 9457 problem-details responses for the
// plain-HTTP edges of the router (404, 405, panics, redirects) so that
// errors look the same whether they come from Huma operations or not.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/fxamacker/cbor/v2"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	applog "github.com/janisto/promarket/internal/platform/logging"
)

const (
	schemaPath         = "/schemas/ErrorModel.json"
	contentProblemJSON = "application/problem+json"
	contentProblemCBOR = "application/problem+cbor"
)

// problem mirrors huma.ErrorModel with an explicit $schema field.
type problem struct {
	Schema string `json:"$schema,omitempty"`
	Title  string `json:"title,omitempty"`
	Status int    `json:"status,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// NotFoundHandler emits a problem-details 404 for unmatched routes.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeProblem(w, r, http.StatusNotFound, "resource not found")
	}
}

// MethodNotAllowedHandler emits a problem-details 405 including an Allow header
// derived from chi's routing table.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allow := allowedMethods(r); len(allow) > 0 {
			w.Header().Set("Allow", strings.Join(allow, ", "))
		}
		writeProblem(w, r, http.StatusMethodNotAllowed,
			fmt.Sprintf("method %s not allowed", r.Method))
	}
}

// Recoverer converts panics into problem-details 500 responses.
// http.ErrAbortHandler is re-panicked so the server can abort the connection.
// If the handler already wrote a response, the panic is logged but the partial
// response is left untouched.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &responseWriter{ResponseWriter: w}
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}
				var err error
				switch v := rec.(type) {
				case error:
					err = v
				default:
					err = fmt.Errorf("%v", v)
				}
				applog.LogError(r.Context(), "panic recovered", err,
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.ByteString("stack", debug.Stack()),
				)
				if rw.wroteHeader {
					return
				}
				writeProblem(rw, r, http.StatusInternalServerError, "internal server error")
			}()
			next.ServeHTTP(rw, r)
		})
	}
}

// WriteRedirect writes a redirect response with the given status code.
func WriteRedirect(w http.ResponseWriter, _ *http.Request, location string, status int) {
	w.Header().Set("Location", location)
	w.WriteHeader(status)
}

// Status304NotModified returns a body-less 304 status error for Huma handlers.
func Status304NotModified() huma.StatusError {
	return &noBodyStatusError{status: http.StatusNotModified, message: http.StatusText(http.StatusNotModified)}
}

// noBodyStatusError is a huma.StatusError whose response carries no body.
type noBodyStatusError struct {
	status  int
	message string
}

func (e *noBodyStatusError) Error() string {
	if e.message != "" {
		return e.message
	}
	return http.StatusText(e.status)
}

func (e *noBodyStatusError) GetStatus() int {
	return e.status
}

// responseWriter tracks whether a response has been started so the recoverer
// knows when it is too late to write a problem body.
type responseWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *responseWriter) WriteHeader(status int) {
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseWriter) Write(p []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(p)
}

// Unwrap exposes the underlying writer for http.ResponseController.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func writeProblem(w http.ResponseWriter, r *http.Request, status int, detail string) {
	schema := schemaURL(r)
	useCBOR := selectFormat(r.Header.Get("Accept"))

	ensureVary(w.Header(), "Origin", "Accept")
	w.Header().Set("Link", fmt.Sprintf("<%s>; rel=\"describedBy\"", schema))

	body := problem{
		Schema: schema,
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	}

	if useCBOR {
		w.Header().Set("Content-Type", contentProblemCBOR)
		w.WriteHeader(status)
		data, err := cbor.Marshal(body)
		if err != nil {
			applog.LogError(r.Context(), "failed to encode problem as CBOR", err)
			return
		}
		if _, err := w.Write(data); err != nil {
			applog.LogError(r.Context(), "failed to write problem response", err)
		}
		return
	}

	w.Header().Set("Content-Type", contentProblemJSON)
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		applog.LogError(r.Context(), "failed to encode problem as JSON", err)
	}
}

// schemaURL builds an absolute URL for the error model schema, honoring
// X-Forwarded-Proto so links stay https behind a TLS-terminating proxy.
func schemaURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}
	host := r.Host
	if host == "" {
		host = "localhost"
	}
	return scheme + "://" + host + schemaPath
}

// ensureVary merges the given header names into Vary without duplicates.
func ensureVary(h http.Header, values ...string) {
	seen := make(map[string]struct{})
	var merged []string
	for _, existing := range h.Values("Vary") {
		for _, part := range strings.Split(existing, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if _, ok := seen[part]; ok {
				continue
			}
			seen[part] = struct{}{}
			merged = append(merged, part)
		}
	}
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		merged = append(merged, v)
	}
	if len(merged) == 0 {
		return
	}
	h.Set("Vary", strings.Join(merged, ", "))
}

// allowedMethods inspects chi's routing table to discover methods that would
// match the request path.
func allowedMethods(r *http.Request) []string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return nil
	}

	routePath := rctx.RoutePath
	if routePath == "" {
		if r.URL.RawPath != "" {
			routePath = r.URL.RawPath
		} else {
			routePath = r.URL.Path
		}
		if routePath == "" {
			routePath = "/"
		}
	}

	candidates := []string{
		http.MethodGet,
		http.MethodHead,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
	}
	var allowed []string
	for _, method := range candidates {
		tctx := chi.NewRouteContext()
		if rctx.Routes.Match(tctx, method, routePath) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

// acceptRange is a single parsed media range from an Accept header.
type acceptRange struct {
	typ     string
	subtype string
	q       float64
}

// parseAccept parses an Accept header into media ranges.
// Malformed or out-of-range q values default to 1.0 per RFC 9110 leniency.
func parseAccept(header string) []acceptRange {
	var ranges []acceptRange
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		segments := strings.Split(part, ";")
		mediaType := strings.ToLower(strings.TrimSpace(segments[0]))
		if mediaType == "" {
			continue
		}
		typ, subtype, ok := strings.Cut(mediaType, "/")
		if !ok {
			subtype = "*"
		}
		q := 1.0
		for _, param := range segments[1:] {
			key, value, ok := strings.Cut(strings.TrimSpace(param), "=")
			if !ok || strings.TrimSpace(key) != "q" {
				continue
			}
			parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err != nil || parsed < 0 || parsed > 1 {
				q = 1.0
				continue
			}
			q = parsed
		}
		ranges = append(ranges, acceptRange{typ: typ, subtype: subtype, q: q})
	}
	return ranges
}

// mediaSpecificity ranks how precisely a range names a media type:
// exact problem type > exact base type > structured-suffix wildcard >
// application/* > */*. Returns -1 when the range does not match.
func mediaSpecificity(r acceptRange, base, suffix string) int {
	switch {
	case r.typ == "application" && r.subtype == "problem+"+suffix:
		return 4
	case r.typ == "application" && r.subtype == base:
		return 3
	case r.typ == "application" && r.subtype == "*+"+suffix:
		return 2
	case r.typ == "application" && r.subtype == "*":
		return 1
	case r.typ == "*" && r.subtype == "*":
		return 0
	default:
		return -1
	}
}

// formatPreference returns the q value and specificity of the most specific
// range matching the given format, or (0, -1) when nothing matches.
func formatPreference(ranges []acceptRange, base, suffix string) (float64, int) {
	bestSpec := -1
	bestQ := 0.0
	for _, r := range ranges {
		spec := mediaSpecificity(r, base, suffix)
		if spec > bestSpec {
			bestSpec = spec
			bestQ = r.q
		}
	}
	return bestQ, bestSpec
}

// selectFormat reports whether CBOR should be used for the given Accept
// header. Per RFC 9110, q values rank first and specificity breaks ties;
// JSON is the default whenever neither format is clearly preferred.
func selectFormat(header string) bool {
	ranges := parseAccept(header)
	if len(ranges) == 0 {
		return false
	}

	jsonQ, jsonSpec := formatPreference(ranges, "json", "json")
	cborQ, cborSpec := formatPreference(ranges, "cbor", "cbor")

	if cborSpec < 0 || cborQ == 0 {
		return false
	}
	if jsonSpec < 0 || jsonQ == 0 {
		return true
	}
	if cborQ != jsonQ {
		return cborQ > jsonQ
	}
	return cborSpec > jsonSpec
}
