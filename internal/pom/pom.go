// Package pom reads the project version from a Maven project descriptor.
//
// Only the version element that is a direct child of the document root is
// considered; versions nested under <parent> or <dependency> are ignored.
package pom

import (
	"encoding/xml"
	stdErrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/net/html/charset"

	derrors "git.home.luguber.info/inful/rslenv/internal/errors"
)

const (
	// DefaultPath is the descriptor location relative to the working directory.
	DefaultPath = "pom.xml"
	// DefaultNamespace is the Maven POM 4.0.0 namespace.
	DefaultNamespace = "http://maven.apache.org/POM/4.0.0"

	versionElement = "version"
)

var (
	ErrDescriptorNotFound  = stdErrors.New("descriptor not found")
	ErrMalformedDescriptor = stdErrors.New("malformed descriptor")
	ErrVersionNotFound     = stdErrors.New("version element not found")
)

// Reader locates a descriptor and extracts its version.
type Reader struct {
	Path      string
	Namespace string
}

// NewReader returns a Reader for path with the Maven namespace.
func NewReader(path string) *Reader {
	return &Reader{Path: path, Namespace: DefaultNamespace}
}

// ReadVersion reads pom.xml in the current working directory.
func ReadVersion() (string, error) {
	return NewReader(DefaultPath).Read()
}

// Read opens the descriptor and returns the text of its version element.
// Errors are *errors.RSLEnvError values wrapping one of the package
// sentinels.
func (r *Reader) Read() (string, error) {
	path := r.Path
	if path == "" {
		path = DefaultPath
	}
	ns := r.Namespace
	if ns == "" {
		ns = DefaultNamespace
	}

	f, err := os.Open(path) //nolint:gosec // descriptor path comes from config/flags.
	if err != nil {
		if stdErrors.Is(err, fs.ErrNotExist) {
			return "", derrors.DescriptorNotFound(path, fmt.Errorf("%w: %w", ErrDescriptorNotFound, err))
		}
		return "", derrors.DescriptorNotFound(path, err)
	}
	defer func() { _ = f.Close() }()

	v, err := ParseVersion(f, ns)
	switch {
	case err == nil:
		return v, nil
	case stdErrors.Is(err, ErrVersionNotFound):
		return "", derrors.VersionMissing(path, ns, err)
	default:
		return "", derrors.DescriptorMalformed(path, err)
	}
}

// ParseVersion decodes a descriptor from rd and returns the verbatim text of
// the root's {namespace}version child. The whole document is consumed so that
// malformed trailing content is reported as ErrMalformedDescriptor. Declared
// encodings other than UTF-8 (ISO-8859-1, windows-1252, ...) are transcoded.
func ParseVersion(rd io.Reader, namespace string) (string, error) {
	dec := xml.NewDecoder(rd)
	dec.CharsetReader = charset.NewReaderLabel

	var (
		depth   int
		sawRoot bool
		found   bool
		inVer   bool
		nested  bool
		text    strings.Builder
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrMalformedDescriptor, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if depth == 1 {
				if sawRoot {
					return "", fmt.Errorf("%w: multiple root elements", ErrMalformedDescriptor)
				}
				sawRoot = true
			}
			if depth == 2 && !found && t.Name.Space == namespace && t.Name.Local == versionElement {
				inVer = true
			}
			if inVer && depth > 2 {
				nested = true
			}
		case xml.EndElement:
			if inVer && depth == 2 {
				inVer = false
				found = true
			}
			depth--
		case xml.CharData:
			// Only the text before the first nested child counts.
			if inVer && !nested && depth == 2 {
				text.Write(t)
			}
		}
	}

	if !sawRoot {
		return "", fmt.Errorf("%w: no root element", ErrMalformedDescriptor)
	}
	if !found {
		return "", fmt.Errorf("%w: {%s}%s", ErrVersionNotFound, namespace, versionElement)
	}

	// An element without text has no version; whitespace is kept as is.
	if text.Len() == 0 {
		return "", fmt.Errorf("%w: {%s}%s is empty", ErrVersionNotFound, namespace, versionElement)
	}
	return text.String(), nil
}
