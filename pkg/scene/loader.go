package scene

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tmurray/go-whitted-raytracer/pkg/core"
	"github.com/tmurray/go-whitted-raytracer/pkg/geometry"
	"github.com/tmurray/go-whitted-raytracer/pkg/lights"
	"github.com/tmurray/go-whitted-raytracer/pkg/material"
)

// tokenizer yields whitespace-delimited tokens from a scene description.
// A token beginning with '#' discards the remainder of its line, so
// directives may span lines but comments may not.
type tokenizer struct {
	scanner *bufio.Scanner
	tokens  []string
	line    int
}

func newTokenizer(reader io.Reader) *tokenizer {
	return &tokenizer{scanner: bufio.NewScanner(reader)}
}

// next returns the next token, refilling from subsequent lines as needed
func (t *tokenizer) next() (string, bool) {
	for {
		for len(t.tokens) > 0 {
			token := t.tokens[0]
			t.tokens = t.tokens[1:]

			if strings.HasPrefix(token, "#") {
				// Comment: drop the rest of this line
				t.tokens = nil
				break
			}
			return token, true
		}

		if !t.scanner.Scan() {
			return "", false
		}
		t.line++
		t.tokens = strings.Fields(t.scanner.Text())
	}
}

func (t *tokenizer) nextFloat() (float64, error) {
	token, ok := t.next()
	if !ok {
		return 0, fmt.Errorf("line %d: unexpected end of scene description", t.line)
	}

	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: invalid number %q", t.line, token)
	}
	return value, nil
}

func (t *tokenizer) nextInt() (int, error) {
	token, ok := t.next()
	if !ok {
		return 0, fmt.Errorf("line %d: unexpected end of scene description", t.line)
	}

	value, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("line %d: invalid integer %q", t.line, token)
	}
	return value, nil
}

func (t *tokenizer) nextVec3() (core.Vec3, error) {
	x, err := t.nextFloat()
	if err != nil {
		return core.Vec3{}, err
	}
	y, err := t.nextFloat()
	if err != nil {
		return core.Vec3{}, err
	}
	z, err := t.nextFloat()
	if err != nil {
		return core.Vec3{}, err
	}
	return core.NewVec3(x, y, z), nil
}

func (t *tokenizer) nextColor() (core.Color, error) {
	v, err := t.nextVec3()
	if err != nil {
		return core.Color{}, err
	}
	return core.NewColor(v.X, v.Y, v.Z), nil
}

// Load parses a scene description from a reader.
// Any format error aborts the whole load; there is no partial recovery.
func Load(reader io.Reader) (*Scene, error) {
	s := NewScene()
	tok := newTokenizer(reader)

	for {
		directive, ok := tok.next()
		if !ok {
			return s, nil
		}

		var err error
		switch directive {
		case "material":
			err = readNamedMaterial(tok, s)
		case "sphere":
			err = readSphere(tok, s)
		case "light":
			err = readLight(tok, s)
		case "dispersion":
			s.Dispersion, err = tok.nextFloat()
		case "maxReflections":
			s.MaxReflections, err = tok.nextInt()
		case "cameraUp":
			s.CameraUp, err = tok.nextVec3()
		case "cameraPosition":
			s.CameraPosition, err = tok.nextVec3()
		case "cameraLookAt":
			s.CameraLookAt, err = tok.nextVec3()
		case "imageScale":
			s.ImageScale, err = tok.nextFloat()
		default:
			err = fmt.Errorf("line %d: unknown directive %q", tok.line, directive)
		}

		if err != nil {
			return nil, err
		}
	}
}

// LoadFile parses a scene description from a file
func LoadFile(filename string) (*Scene, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	return Load(file)
}

// readMaterial parses an inline material definition or resolves a
// reference to a previously declared named material.
func readMaterial(tok *tokenizer, s *Scene) (material.Material, error) {
	kind, ok := tok.next()
	if !ok {
		return nil, fmt.Errorf("line %d: unexpected end of scene description", tok.line)
	}

	switch kind {
	case "FlatColor":
		color, err := tok.nextColor()
		if err != nil {
			return nil, err
		}
		shininess, err := tok.nextFloat()
		if err != nil {
			return nil, err
		}
		reflectivity, err := tok.nextFloat()
		if err != nil {
			return nil, err
		}
		refractiveIndex, err := tok.nextFloat()
		if err != nil {
			return nil, err
		}
		return material.NewFlatColor(color, shininess, reflectivity, refractiveIndex), nil

	case "Checkerboard":
		color1, err := tok.nextColor()
		if err != nil {
			return nil, err
		}
		color2, err := tok.nextColor()
		if err != nil {
			return nil, err
		}
		scale, err := tok.nextFloat()
		if err != nil {
			return nil, err
		}
		shininess, err := tok.nextFloat()
		if err != nil {
			return nil, err
		}
		reflectivity, err := tok.nextFloat()
		if err != nil {
			return nil, err
		}
		return material.NewCheckerboard(color1, color2, scale, shininess, reflectivity), nil

	default:
		if mat, found := s.Material(kind); found {
			return mat, nil
		}
		return nil, fmt.Errorf("line %d: unknown material kind %q", tok.line, kind)
	}
}

func readNamedMaterial(tok *tokenizer, s *Scene) error {
	name, ok := tok.next()
	if !ok {
		return fmt.Errorf("line %d: unexpected end of scene description", tok.line)
	}

	mat, err := readMaterial(tok, s)
	if err != nil {
		return err
	}
	return s.AddMaterial(name, mat)
}

func readSphere(tok *tokenizer, s *Scene) error {
	center, err := tok.nextVec3()
	if err != nil {
		return err
	}
	radius, err := tok.nextFloat()
	if err != nil {
		return err
	}
	mat, err := readMaterial(tok, s)
	if err != nil {
		return err
	}

	s.AddShape(geometry.NewSphere(center, radius, mat))
	return nil
}

func readLight(tok *tokenizer, s *Scene) error {
	position, err := tok.nextVec3()
	if err != nil {
		return err
	}
	intensity, err := tok.nextFloat()
	if err != nil {
		return err
	}

	s.AddLight(lights.NewLight(position, intensity))
	return nil
}
