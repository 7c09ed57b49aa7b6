package gitlab

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"time"

	"github.com/Kargones/gitlab-client/internal/constants"
	"github.com/Kargones/gitlab-client/pkg/metrics"
	"github.com/Kargones/gitlab-client/pkg/tracing"

	"github.com/carlmjohnson/requests"
	"github.com/google/go-querystring/query"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Допустимые статусы по умолчанию для каждого метода.
var defaultStatuses = map[string][]int{
	http.MethodGet:    {http.StatusOK},
	http.MethodPost:   {http.StatusOK, http.StatusCreated},
	http.MethodPut:    {http.StatusOK, http.StatusCreated},
	http.MethodDelete: {http.StatusOK, http.StatusAccepted, http.StatusNoContent},
}

// Get выполняет GET path с params в query string и декодирует ответ в v.
//
// path задаётся относительно /api/v3 и начинается с "/". params — nil,
// url.Values, map[string]string или структура с тегами `url:"..."`.
// v — указатель на результат; *[]byte и *string получают тело как есть.
// Если тело не JSON, v сохраняет исходное значение.
//
// Возвращает true, если статус ответа входит в список допустимых.
// При неуспешном статусе возвращает (false, *GitLabError), а в режиме
// подавления (false, nil).
func (c *Client) Get(ctx context.Context, path string, params, v any, opts ...RequestOption) (bool, error) {
	return c.do(ctx, http.MethodGet, path, params, v, opts)
}

// Post выполняет POST path с params в form body. См. Get.
func (c *Client) Post(ctx context.Context, path string, params, v any, opts ...RequestOption) (bool, error) {
	return c.do(ctx, http.MethodPost, path, params, v, opts)
}

// Put выполняет PUT path с params в form body. См. Get.
func (c *Client) Put(ctx context.Context, path string, params, v any, opts ...RequestOption) (bool, error) {
	return c.do(ctx, http.MethodPut, path, params, v, opts)
}

// Delete выполняет DELETE path с params в form body. См. Get.
func (c *Client) Delete(ctx context.Context, path string, params, v any, opts ...RequestOption) (bool, error) {
	return c.do(ctx, http.MethodDelete, path, params, v, opts)
}

func (c *Client) requestConfig(method string, opts []RequestOption) *requestConfig {
	c.mu.RLock()
	rc := &requestConfig{
		sudo:     c.sudo,
		suppress: c.suppress,
		statuses: defaultStatuses[method],
	}
	c.mu.RUnlock()

	for _, opt := range opts {
		opt(rc)
	}
	return rc
}

func (c *Client) do(ctx context.Context, method, path string, params, v any, opts []RequestOption) (bool, error) {
	rc := c.requestConfig(method, opts)
	endpoint := metrics.EndpointLabel(path)

	values, err := encodeParams(params)
	if err != nil {
		return false, &GitLabError{
			Code: ErrGitLabValidation, Message: "не удалось закодировать параметры запроса",
			Cause: err, Method: method, Path: path,
		}
	}

	ctx, span := c.tracer.Start(ctx, "gitlab "+method+" "+endpoint,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("gitlab.endpoint", endpoint),
			attribute.Bool("gitlab.sudo", rc.sudo != ""),
		),
	)
	defer span.End()

	rb := requests.URL(c.apiURL + path).
		Method(method).
		Client(c.httpClient).
		Header(constants.HeaderUserAgent, c.userAgent)

	if !rc.noAuth {
		if err := c.applyAuth(rb); err != nil {
			glErr := &GitLabError{Code: ErrGitLabAuth, Message: "не удалось получить OAuth токен", Cause: err, Method: method, Path: path}
			span.RecordError(glErr)
			span.SetStatus(codes.Error, glErr.Message)
			return false, glErr
		}
	}
	if c.basicUser != "" {
		rb.BasicAuth(c.basicUser, c.basicPassword)
	}
	if rc.sudo != "" {
		rb.Header(constants.HeaderSudo, rc.sudo)
	}
	for k, vs := range rc.headers {
		rb.Header(k, vs...)
	}

	if len(values) > 0 {
		if method == http.MethodGet {
			for k, vs := range values {
				rb.Param(k, vs...)
			}
		} else {
			rb.BodyForm(values)
		}
	}

	var (
		status int
		body   []byte
	)
	// Собственный валидатор отключает проверку 2xx в requests:
	// статус классифицируется ниже по списку допустимых кодов.
	rb.AddValidator(func(res *http.Response) error {
		status = res.StatusCode
		if rc.response != nil {
			*rc.response = res.Header.Clone()
		}
		return nil
	})
	rb.Handle(func(res *http.Response) error {
		var readErr error
		body, readErr = io.ReadAll(res.Body)
		return readErr
	})

	start := time.Now()
	fetchErr := rb.Fetch(ctx)
	duration := time.Since(start)

	accepted := fetchErr == nil && slices.Contains(rc.statuses, status)
	c.metrics.RecordRequest(method, path, status, duration, accepted)
	if status != 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", status))
	}

	log := c.logger.With(
		"method", method,
		"endpoint", endpoint,
		"status", status,
		"duration_ms", duration.Milliseconds(),
	)
	if traceID := tracing.TraceIDFromContext(ctx); traceID != "" {
		log = log.With("trace_id", traceID)
	}

	if fetchErr != nil {
		glErr := newTransportError(method, path, fetchErr)
		span.RecordError(glErr)
		span.SetStatus(codes.Error, glErr.Message)
		log.Warn("gitlab: запрос не выполнен", "error", fetchErr.Error())
		return false, glErr
	}

	if !accepted {
		glErr := newStatusError(method, path, status, body)
		span.SetStatus(codes.Error, glErr.Message)
		if rc.suppress {
			log.Debug("gitlab: неуспешный ответ подавлен", "message", glErr.Message)
			return false, nil
		}
		span.RecordError(glErr)
		log.Warn("gitlab: неуспешный ответ", "message", glErr.Message)
		return false, glErr
	}

	if err := decodeBody(body, v); err != nil {
		log.Debug("gitlab: тело ответа не декодировано, используется значение по умолчанию", "error", err.Error())
	}
	log.Debug("gitlab: запрос выполнен")
	return true, nil
}

func (c *Client) applyAuth(rb *requests.Builder) error {
	c.mu.RLock()
	ts, token := c.tokenSource, c.privateToken
	c.mu.RUnlock()

	switch {
	case ts != nil:
		tok, err := ts.Token()
		if err != nil {
			return err
		}
		rb.Header(constants.HeaderAuthorization, tok.Type()+" "+tok.AccessToken)
	case token != "":
		rb.Header(constants.HeaderPrivateToken, token)
	}
	return nil
}

// encodeParams приводит параметры вызова к url.Values.
// Поля структур без значения (nil указатели с omitempty) не попадают в результат.
func encodeParams(params any) (url.Values, error) {
	switch p := params.(type) {
	case nil:
		return nil, nil
	case url.Values:
		return p, nil
	case map[string]string:
		values := make(url.Values, len(p))
		for k, v := range p {
			values.Set(k, v)
		}
		return values, nil
	default:
		return query.Values(params)
	}
}

// decodeBody заполняет v телом ответа. Ошибка декодирования не прерывает
// вызов: v остаётся со значением по умолчанию.
func decodeBody(body []byte, v any) error {
	switch t := v.(type) {
	case nil:
		return nil
	case *[]byte:
		*t = body
		return nil
	case *string:
		*t = string(body)
		return nil
	}
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, v)
}

// pathEscape приводит идентификатор к сегменту пути: числа как есть,
// строки экранируются целиком ("group/app" → "group%2Fapp").
func pathEscape(id any) string {
	switch v := id.(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case string:
		return url.PathEscape(v)
	case fmt.Stringer:
		return url.PathEscape(v.String())
	default:
		return url.PathEscape(fmt.Sprint(v))
	}
}
