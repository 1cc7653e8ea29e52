package browser

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"github.com/rios0rios0/cmistools/internal/domain/entities"
)

const defaultMimeType = "application/octet-stream"

// Client represents a CMIS Browser Binding HTTP client
type Client struct {
	username string
	password string
	reader   *http.Client
	writer   *http.Client
	limiter  *rate.Limiter
}

// NewClient creates a new Browser Binding client
func NewClient(settings entities.ConnectionSettings) *Client {
	return &Client{
		username: settings.Username,
		password: settings.Password,
		reader:   newReadClient(settings),
		writer:   newWriteClient(settings),
		limiter:  newLimiter(settings),
	}
}

// formField is one ordered field of a form post
type formField struct {
	name  string
	value string
}

// actionForm builds the cmisaction field plus the propertyId[i]/propertyValue[i] pairs
func actionForm(action string, properties ...formField) []formField {
	fields := []formField{{name: "cmisaction", value: action}}
	for i, property := range properties {
		fields = append(fields,
			formField{name: fmt.Sprintf("propertyId[%d]", i), value: property.name},
			formField{name: fmt.Sprintf("propertyValue[%d]", i), value: property.value},
		)
	}
	return fields
}

func (c *Client) getJSON(ctx context.Context, endpoint string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, withQuery(endpoint, query), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.do(c.reader, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeJSON(resp.Body, out)
}

// getStream returns the raw response of a GET; the caller closes the body
func (c *Client) getStream(ctx context.Context, endpoint string, query url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, withQuery(endpoint, query), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(c.reader, req)
}

func (c *Client) postForm(
	ctx context.Context,
	endpoint string,
	query url.Values,
	fields []formField,
	out any,
) error {
	form := url.Values{}
	for _, field := range fields {
		form.Add(field.name, field.value)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, withQuery(endpoint, query), strings.NewReader(form.Encode()),
	)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.do(c.writer, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeJSON(resp.Body, out)
}

// postMultipart streams fields followed by the content part without buffering the content
func (c *Client) postMultipart(
	ctx context.Context,
	endpoint string,
	query url.Values,
	fields []formField,
	content entities.ContentStream,
	out any,
) error {
	bodyReader, bodyWriter := io.Pipe()
	writer := multipart.NewWriter(bodyWriter)
	done := make(chan struct{})
	go func() {
		defer close(done)
		bodyWriter.CloseWithError(writeMultipart(writer, fields, content))
	}()
	// the writer goroutine must be gone before the caller closes content.Reader
	defer func() {
		bodyReader.Close()
		<-done
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, withQuery(endpoint, query), bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.do(c.writer, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeJSON(resp.Body, out)
}

func writeMultipart(writer *multipart.Writer, fields []formField, content entities.ContentStream) error {
	for _, field := range fields {
		if err := writer.WriteField(field.name, field.value); err != nil {
			return err
		}
	}

	mimeType := content.MimeType
	if mimeType == "" {
		mimeType = defaultMimeType
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="content"; filename="%s"`, quoteEscaper.Replace(content.Filename)))
	header.Set("Content-Type", mimeType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, content.Reader); err != nil {
		return err
	}
	return writer.Close()
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// do applies throttling and authentication and turns non-2xx answers into *CMISError
func (c *Client) do(httpClient *http.Client, req *http.Request) (*http.Response, error) {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("request throttling aborted: %w", err)
	}

	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		return nil, newCMISError(resp)
	}

	return resp, nil
}

func withQuery(endpoint string, query url.Values) string {
	if len(query) == 0 {
		return endpoint
	}
	separator := "?"
	if strings.Contains(endpoint, "?") {
		separator = "&"
	}
	return endpoint + separator + query.Encode()
}

func decodeJSON(body io.Reader, out any) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
