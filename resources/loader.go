// Package resources acquires assets referenced from a stylesheet or document
// (images, fonts, nested stylesheets) and exposes them as byte streams, raw
// bytes, or temporary files. A resource is classified by its URI into one of
// four terminal states: embedded data decoded from a data: URI, an open local
// file, an open HTTP(S) response, or not found. Classification and fetching
// happen eagerly at Open time; construction itself never fails - callers
// check NotFound() (or use Fetch for an explicit error).
package resources

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/h2non/filetype"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/ianaindex"
)

// Kind is the terminal acquisition state of a resource.
type Kind int

const (
	KindNotFound  Kind = iota // nothing could be obtained
	KindEmbedded              // decoded from a data: URI, held in memory
	KindLocalFile             // open handle on a local file
	KindRemote                // open HTTP(S) response body
)

func (k Kind) String() string {
	switch k {
	case KindEmbedded:
		return "embedded"
	case KindLocalFile:
		return "local"
	case KindRemote:
		return "remote"
	default:
		return "not-found"
	}
}

// dataURIPattern matches a base64 data URI with its declared MIME type and
// optional charset parameter.
var dataURIPattern = regexp.MustCompile(`(?s)^data:([a-z0-9.+-]+/[a-z0-9.+-]+)(;charset=[^;,]+)?;base64,(.*)$`)

type options struct {
	basePath  string
	client    *http.Client
	log       *zap.Logger
	tempDir   string
	userAgent string
}

// Option adjusts how a resource is opened.
type Option func(*options)

// WithBasePath resolves relative URIs against base - a directory for local
// resources or a URL for file:/http(s): ones.
func WithBasePath(base string) Option {
	return func(o *options) { o.basePath = base }
}

// WithClient uses client for HTTP(S) fetches instead of http.DefaultClient.
// Timeouts and transport policy belong to the client - none are imposed here.
func WithClient(client *http.Client) Option {
	return func(o *options) { o.client = client }
}

// WithLogger routes debug and warning output to log.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithTempDir places materialized temporary files under dir instead of the
// system default.
func WithTempDir(dir string) Option {
	return func(o *options) { o.tempDir = dir }
}

// WithUserAgent sets the User-Agent header on HTTP(S) fetches.
func WithUserAgent(ua string) Option {
	return func(o *options) { o.userAgent = ua }
}

// Resource is one fetched asset. Instances are single-caller and are not
// reused across URIs. The underlying file or network handle stays open until
// Close.
type Resource struct {
	id          string
	kind        Kind
	uri         string // resolved URI or path
	local       string // filesystem path when kind is KindLocalFile
	mimetype    string // media type without parameters
	contentType string // full content type, parameters included
	stream      io.ReadCloser
	data        []byte
	tmpPath     string
	tempDir     string
	err         error
	log         *zap.Logger
}

// Open classifies uri and eagerly acquires the resource. It never returns
// nil and never fails - on any acquisition problem the resource settles in
// the not-found state with the cause available from Err.
func Open(uri string, opts ...Option) *Resource {
	o := options{client: http.DefaultClient, log: zap.NewNop()}
	for _, fn := range opts {
		fn(&o)
	}

	r := &Resource{
		id:      uuid.NewString(),
		kind:    KindNotFound,
		tempDir: o.tempDir,
		log:     o.log.Named("resources"),
	}
	r.log.Debug("Opening resource",
		zap.String("id", r.id), zap.String("uri", clip(uri, 96)), zap.String("basepath", o.basePath))

	switch {
	case uri == "":
		r.err = &FetchError{Kind: ErrNotFound, URI: uri, Err: os.ErrNotExist}
	case strings.HasPrefix(uri, "data:"):
		r.openData(uri)
	default:
		r.open(uri, &o)
	}
	return r
}

// Fetch opens a resource and reports not-found as an explicit error.
func Fetch(uri string, opts ...Option) (*Resource, error) {
	r := Open(uri, opts...)
	if r.NotFound() {
		if r.err != nil {
			return nil, r.err
		}
		return nil, &FetchError{Kind: ErrNotFound, URI: uri, Err: os.ErrNotExist}
	}
	return r, nil
}

// open dispatches on the URI scheme, falling back to the base path's scheme
// when the URI has none.
func (r *Resource) open(uri string, o *options) {
	scheme := parseScheme(uri)
	if scheme == "" && o.basePath != "" {
		scheme = parseScheme(o.basePath)
	}
	// Windows drive letters parse as single-letter schemes.
	if len(scheme) == 1 {
		scheme = ""
	}

	switch scheme {
	case "file":
		r.openFileURL(uri, o)
	case "http", "https":
		r.openRemote(uri, o)
	default:
		r.openLocal(uri, o)
	}
}

// openData decodes a base64 data URI entirely in memory.
func (r *Resource) openData(uri string) {
	m := dataURIPattern.FindStringSubmatch(uri)
	if m == nil {
		r.err = &FetchError{Kind: ErrMalformed, URI: clip(uri, 96), Err: fmt.Errorf("malformed data URI")}
		r.log.Debug("Malformed data URI", zap.String("id", r.id), zap.Error(r.err))
		return
	}
	payload := strings.Map(func(c rune) rune {
		// base64 payloads in documents are frequently line-wrapped
		if c == '\n' || c == '\r' || c == ' ' || c == '\t' {
			return -1
		}
		return c
	}, m[3])
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		r.err = &FetchError{Kind: ErrMalformed, URI: clip(uri, 96), Err: err}
		r.log.Debug("Unable to decode data URI", zap.String("id", r.id), zap.Error(err))
		return
	}
	r.kind = KindEmbedded
	r.uri = "data:" + m[1]
	r.mimetype = m[1]
	r.contentType = m[1] + strings.ReplaceAll(m[2], ";", "; ")
	r.data = data
	r.log.Debug("Decoded embedded resource",
		zap.String("id", r.id), zap.String("mime", r.mimetype), zap.Int("bytes", len(data)))
}

// openFileURL opens a file: URL. A root-relative URI is joined onto the base
// URL first.
func (r *Resource) openFileURL(uri string, o *options) {
	full := uri
	if o.basePath != "" && strings.HasPrefix(uri, "/") {
		full = joinURL(o.basePath, strings.TrimPrefix(uri, "/"))
	}
	u, err := url.Parse(full)
	if err != nil {
		r.err = &FetchError{Kind: ErrMalformed, URI: full, Err: err}
		return
	}
	fsPath := filepath.FromSlash(u.Path)
	f, err := os.Open(fsPath)
	if err != nil {
		r.err = &FetchError{Kind: ErrNotFound, URI: full, Err: err}
		r.log.Debug("Unable to open file URL", zap.String("id", r.id), zap.Error(err))
		return
	}
	r.kind = KindLocalFile
	r.uri = full
	r.local = fsPath
	r.stream = f
	r.setMimetypeByName(fsPath)
	if r.mimetype == "" {
		r.sniffMimetype(f)
	}
}

// openRemote issues a single GET for the URI resolved against the base path.
// On a non-200 response or a transport failure one fallback plain GET of the
// original URI is attempted; if that fails too the resource is not found.
func (r *Resource) openRemote(uri string, o *options) {
	full := uri
	if o.basePath != "" {
		full = joinURL(o.basePath, uri)
	}

	resp, err := o.get(full)
	if err == nil && resp.StatusCode == http.StatusOK {
		r.capture(full, resp)
		return
	}

	var cause error
	errKind := ErrTransport
	if err != nil {
		cause = err
	} else {
		resp.Body.Close()
		cause = fmt.Errorf("unexpected status %q", resp.Status)
		if resp.StatusCode == http.StatusNotFound {
			errKind = ErrNotFound
		}
	}
	r.log.Debug("Retrying resource with original URI",
		zap.String("id", r.id), zap.String("uri", full), zap.Error(cause))

	if full == uri {
		r.err = &FetchError{Kind: errKind, URI: full, Err: cause}
		return
	}
	resp, err = o.get(uri)
	if err != nil {
		r.err = &FetchError{Kind: errKind, URI: full, Err: multierr.Append(cause, err)}
		return
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		if resp.StatusCode == http.StatusNotFound {
			errKind = ErrNotFound
		}
		r.err = &FetchError{Kind: errKind, URI: uri,
			Err: multierr.Append(cause, fmt.Errorf("unexpected status %q", resp.Status))}
		return
	}
	r.capture(uri, resp)
}

func (o *options) get(uri string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}
	if o.userAgent != "" {
		req.Header.Set("User-Agent", o.userAgent)
	}
	return o.client.Do(req)
}

// capture takes ownership of a successful HTTP response, transparently
// decompressing a gzip body when the server declares one.
func (r *Resource) capture(uri string, resp *http.Response) {
	r.contentType = resp.Header.Get("Content-Type")
	r.mimetype = stripParams(r.contentType)

	body := io.ReadCloser(resp.Body)
	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			resp.Body.Close()
			r.err = &FetchError{Kind: ErrTransport, URI: uri, Err: err}
			return
		}
		body = &gzipBody{gz: gz, raw: resp.Body}
	}
	r.kind = KindRemote
	r.uri = uri
	r.stream = body
	r.log.Debug("Fetched remote resource",
		zap.String("id", r.id), zap.String("uri", uri), zap.String("mime", r.mimetype))
}

// openLocal treats the URI as a filesystem path, joined with the base path
// and normalized.
func (r *Resource) openLocal(uri string, o *options) {
	fsPath := filepath.FromSlash(uri)
	if o.basePath != "" && !filepath.IsAbs(fsPath) {
		fsPath = filepath.Join(o.basePath, fsPath)
	}
	fsPath = filepath.Clean(fsPath)

	fi, err := os.Stat(fsPath)
	if err != nil || fi.IsDir() {
		if err == nil {
			err = fmt.Errorf("%q is a directory", fsPath)
		}
		r.err = &FetchError{Kind: ErrNotFound, URI: fsPath, Err: err}
		r.log.Debug("Local resource not found", zap.String("id", r.id), zap.String("path", fsPath))
		return
	}
	f, err := os.Open(fsPath)
	if err != nil {
		r.err = &FetchError{Kind: ErrTransport, URI: fsPath, Err: err}
		return
	}
	r.kind = KindLocalFile
	r.uri = fsPath
	r.local = fsPath
	r.stream = f
	r.setMimetypeByName(fsPath)
	if r.mimetype == "" {
		r.sniffMimetype(f)
	}
	r.log.Debug("Opened local resource",
		zap.String("id", r.id), zap.String("path", fsPath), zap.String("mime", r.mimetype))
}

// setMimetypeByName guesses the media type from the filename extension.
func (r *Resource) setMimetypeByName(name string) {
	if mt := mime.TypeByExtension(filepath.Ext(name)); mt != "" {
		r.contentType = mt
		r.mimetype = stripParams(mt)
	}
}

// sniffMimetype detects the media type from the file header when the
// extension gave nothing. The read position is restored afterwards.
func (r *Resource) sniffMimetype(f *os.File) {
	head := make([]byte, 262) // filetype needs at most 262 bytes
	n, _ := io.ReadFull(f, head)
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		r.log.Warn("Unable to rewind resource after sniffing",
			zap.String("id", r.id), zap.String("path", r.local), zap.Error(err))
		return
	}
	if t, err := filetype.Match(head[:n]); err == nil && t != filetype.Unknown {
		r.mimetype = t.MIME.Value
		r.contentType = t.MIME.Value
	}
}

// Kind returns the terminal acquisition state.
func (r *Resource) Kind() Kind { return r.kind }

// NotFound reports whether neither a stream nor embedded data was obtained.
func (r *Resource) NotFound() bool { return r.kind == KindNotFound }

// Err returns the classified acquisition error, nil when the resource was
// obtained. It lets callers tell transport failures apart from plain
// not-found.
func (r *Resource) Err() error { return r.err }

// Mimetype returns the detected media type without parameters.
func (r *Resource) Mimetype() string { return r.mimetype }

// URI returns the resolved URI or filesystem path.
func (r *Resource) URI() string { return r.uri }

// LocalPath returns the filesystem path for local resources, empty otherwise.
func (r *Resource) LocalPath() string { return r.local }

// File returns the open stream, or a fresh reader over the embedded data,
// or nil when the resource was not found.
func (r *Resource) File() io.ReadCloser {
	if r.stream != nil {
		return r.stream
	}
	if r.data != nil {
		return io.NopCloser(bytes.NewReader(r.data))
	}
	return nil
}

// Data returns the full byte payload, reading and caching it from the stream
// on first call. Returns nil when the resource was not found or the stream
// could not be read.
func (r *Resource) Data() []byte {
	if r.data != nil {
		return r.data
	}
	if r.stream == nil {
		return nil
	}
	data, err := io.ReadAll(r.stream)
	if err != nil {
		r.log.Warn("Unable to read resource",
			zap.String("id", r.id), zap.String("uri", r.uri), zap.Error(err))
		return nil
	}
	r.data = data
	return r.data
}

// Text decodes a textual resource to UTF-8, honoring the charset parameter
// of its content type when one was declared and sniffing otherwise.
func (r *Resource) Text() (string, error) {
	data := r.Data()
	if data == nil {
		return "", &FetchError{Kind: ErrNotFound, URI: r.uri, Err: os.ErrNotExist}
	}
	if _, params, err := mime.ParseMediaType(r.contentType); err == nil {
		if cs := params["charset"]; cs != "" && !strings.EqualFold(cs, "utf-8") {
			enc, err := ianaindex.IANA.Encoding(cs)
			if err != nil || enc == nil {
				return "", fmt.Errorf("unknown charset %q: %w", cs, err)
			}
			out, err := enc.NewDecoder().Bytes(data)
			if err != nil {
				return "", fmt.Errorf("unable to decode %q text: %w", cs, err)
			}
			return string(out), nil
		}
	}
	rd, err := charset.NewReader(bytes.NewReader(data), r.contentType)
	if err != nil {
		return "", fmt.Errorf("unable to decode resource text: %w", err)
	}
	out, err := io.ReadAll(rd)
	if err != nil {
		return "", fmt.Errorf("unable to decode resource text: %w", err)
	}
	return string(out), nil
}

// NamedFile returns a filesystem path for consumers that need one: the
// original path for local resources, otherwise a temporary file materialized
// on first call and reused afterwards.
func (r *Resource) NamedFile() (string, error) {
	if r.NotFound() {
		return "", &FetchError{Kind: ErrNotFound, URI: r.uri, Err: os.ErrNotExist}
	}
	if r.local != "" {
		return r.local, nil
	}
	if r.tmpPath != "" {
		return r.tmpPath, nil
	}

	data := r.Data()
	if data == nil {
		return "", &FetchError{Kind: ErrTransport, URI: r.uri, Err: fmt.Errorf("resource has no readable payload")}
	}
	f, err := os.CreateTemp(r.tempDir, tempPattern(r.uri, r.mimetype))
	if err != nil {
		return "", fmt.Errorf("unable to materialize resource: %w", err)
	}
	if _, err = f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("unable to materialize resource: %w", err)
	}
	if err = f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("unable to materialize resource: %w", err)
	}
	r.tmpPath = f.Name()
	r.log.Debug("Materialized resource",
		zap.String("id", r.id), zap.String("uri", r.uri), zap.String("path", r.tmpPath))
	return r.tmpPath, nil
}

// Close releases the underlying stream and removes any materialized
// temporary file.
func (r *Resource) Close() (err error) {
	if r.stream != nil {
		if er := r.stream.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to close resource stream: %w", er))
		}
		r.stream = nil
	}
	if r.tmpPath != "" {
		if er := os.Remove(r.tmpPath); er != nil && !os.IsNotExist(er) {
			err = multierr.Append(err, fmt.Errorf("unable to remove materialized file: %w", er))
		}
		r.tmpPath = ""
	}
	return
}

// gzipBody closes both the gzip reader and the response body beneath it.
type gzipBody struct {
	gz  *gzip.Reader
	raw io.ReadCloser
}

func (g *gzipBody) Read(p []byte) (int, error) { return g.gz.Read(p) }

func (g *gzipBody) Close() error {
	return multierr.Append(g.gz.Close(), g.raw.Close())
}

// tempPattern builds an os.CreateTemp pattern from the URI basename,
// sanitized, keeping the extension so path-based consumers can still guess
// the type. When the URI has no extension one is derived from the media type.
func tempPattern(uri, mimetype string) string {
	base := path.Base(strings.SplitN(path.Clean(strings.ReplaceAll(uri, "\\", "/")), "?", 2)[0])
	ext := path.Ext(base)
	name := slug.Make(strings.TrimSuffix(base, ext))
	if name == "" {
		name = "resource"
	}
	if ext == "" && mimetype != "" {
		if exts, err := mime.ExtensionsByType(mimetype); err == nil && len(exts) > 0 {
			ext = exts[0]
		}
	}
	return name + "-*" + ext
}

// parseScheme extracts the URI scheme, empty when there is none.
func parseScheme(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	return u.Scheme
}

// joinURL resolves ref against base the way a browser would.
func joinURL(base, ref string) string {
	bu, err := url.Parse(base)
	if err != nil {
		return ref
	}
	ru, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return bu.ResolveReference(ru).String()
}

// stripParams drops parameters from a content type header value.
func stripParams(contentType string) string {
	return strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0])
}

// clip shortens long values (data URIs) for logging.
func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
