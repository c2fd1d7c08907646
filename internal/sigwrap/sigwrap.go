// Package sigwrap generates the byte conversions of fixed-size signature
// types.
//
// An algorithm package declares only the array type and a go:generate line:
//
//	//go:generate go run github.com/vaultsandbox/cryptocap/cmd/sigwrap --type Signature --size 64
//	type Signature [SignatureSize]byte
//
// sigwrap then emits the size constant, parsing, constant-time equality,
// base64url rendering and the encoding.Binary/Text marshalers. Every parse
// failure is a *cryptocap.Error, so generated code adds no failure shapes of
// its own.
package sigwrap

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"
)

//go:embed signature.go.tmpl
var signatureTemplate string

var tmpl = template.Must(template.New("signature").Parse(signatureTemplate))

var (
	// ErrInvalidPackage is returned when the package name is not an identifier.
	ErrInvalidPackage = errors.New("invalid package name")

	// ErrInvalidType is returned when the type name is not an exported identifier.
	ErrInvalidType = errors.New("invalid type name")

	// ErrInvalidSize is returned when the signature size is not positive.
	ErrInvalidSize = errors.New("invalid signature size")
)

// Config describes one signature type to generate glue for.
type Config struct {
	// Package is the Go package the output belongs to.
	Package string
	// Type is the name of the array type, e.g. "Signature".
	Type string
	// Size is the encoded length in bytes.
	Size int
	// Output is the file to write. Defaults to "<type>_gen.go" in lower case.
	Output string
}

// Validate checks that c describes a type sigwrap can generate.
func (c Config) Validate() error {
	if !token.IsIdentifier(c.Package) {
		return fmt.Errorf("%w: %q", ErrInvalidPackage, c.Package)
	}
	if !token.IsIdentifier(c.Type) || !token.IsExported(c.Type) {
		return fmt.Errorf("%w: %q", ErrInvalidType, c.Type)
	}
	if c.Size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, c.Size)
	}
	return nil
}

// OutputFile returns the file name the generated code is written to.
func (c Config) OutputFile() string {
	if c.Output != "" {
		return c.Output
	}
	return strings.ToLower(c.Type) + "_gen.go"
}

// Receiver returns the receiver name used in generated methods. Types
// starting with B get "sig" so the receiver does not shadow parameter b.
func (c Config) Receiver() string {
	r, _ := utf8.DecodeRuneInString(c.Type)
	if r == 'B' {
		return "sig"
	}
	return string(unicode.ToLower(r))
}

// Generate renders and gofmts the glue for c.
func Generate(c Config) ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	data := struct {
		Package string
		Type    string
		Size    int
		Recv    string
	}{
		Package: c.Package,
		Type:    c.Type,
		Size:    c.Size,
		Recv:    c.Receiver(),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}
