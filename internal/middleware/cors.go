package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// CORSOptions configures the CORS middleware.
type CORSOptions struct {
	// Origins is the allowlist. A single "*" echoes any request origin,
	// since credentials rule out a literal wildcard.
	Origins []string
	// Methods is consulted on each request so routes registered after the
	// middleware are still advertised.
	Methods       func() []string
	ExposeHeaders []string
	MaxAge        time.Duration
}

var defaultExposeHeaders = []string{"X-Request-ID", "X-RateLimit-Remaining", "Retry-After"}

// ParseOrigins splits a comma separated FRONTEND_URL value.
func ParseOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// RouteMethods reports the distinct methods registered on engine plus OPTIONS.
// The table is read once, on the first request, after routing is set up.
func RouteMethods(engine *gin.Engine) func() []string {
	var (
		once    sync.Once
		methods []string
	)
	return func() []string {
		once.Do(func() {
			methods = []string{http.MethodOptions}
			for _, r := range engine.Routes() {
				if !slices.Contains(methods, r.Method) {
					methods = append(methods, r.Method)
				}
			}
			slices.Sort(methods)
		})
		return methods
	}
}

func CORS(opts CORSOptions) gin.HandlerFunc {
	wildcard := slices.Contains(opts.Origins, "*")
	expose := opts.ExposeHeaders
	if len(expose) == 0 {
		expose = defaultExposeHeaders
	}
	exposeHeader := strings.Join(expose, ", ")
	maxAge := ""
	if opts.MaxAge > 0 {
		maxAge = strconv.Itoa(int(opts.MaxAge.Seconds()))
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" && (wildcard || slices.Contains(opts.Origins, origin)) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Expose-Headers", exposeHeader)
		}
		c.Header("Vary", "Origin")

		if c.Request.Method != http.MethodOptions {
			c.Next()
			return
		}

		c.Writer.Header().Add("Vary", "Access-Control-Request-Method")
		c.Writer.Header().Add("Vary", "Access-Control-Request-Headers")
		if opts.Methods != nil {
			c.Header("Access-Control-Allow-Methods", strings.Join(opts.Methods(), ", "))
		}
		reqHeaders := strings.TrimSpace(c.Request.Header.Get("Access-Control-Request-Headers"))
		if reqHeaders == "" {
			reqHeaders = "Content-Type, Authorization"
		}
		c.Header("Access-Control-Allow-Headers", reqHeaders)
		if maxAge != "" {
			c.Header("Access-Control-Max-Age", maxAge)
		}
		c.AbortWithStatus(http.StatusNoContent)
	}
}
