// Package feedback wires per-particle attribute arrays between the input and
// output buffer sets of a ping-pong simulation.
//
// Buffer sets are plain structs whose []float32 fields carry an attrib tag:
//
//	Position []float32 `attrib:"position,2"`
//
// naming the attribute and its components per particle. Bind discovers them
// by reflection; NewPair checks that two sets agree on layout and never share
// memory, so one pass may read one set while writing the other.
package feedback

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ErrLayout matches any failure to bind or pair buffer sets.
var ErrLayout = errors.New("invalid attribute layout")

// Attrib is one bound attribute array.
type Attrib struct {
	Name string
	Size int
	Data []float32
}

// Input is the attribute's name as read by an update pass.
func (attr Attrib) Input() string { return "current_" + attr.Name }

// Output is the attribute's name as written by an update pass.
func (attr Attrib) Output() string { return "new_" + attr.Name }

// Len returns how many particles the array holds.
func (attr Attrib) Len() int {
	if attr.Size == 0 {
		return 0
	}
	return len(attr.Data) / attr.Size
}

func (attr Attrib) String() string {
	return fmt.Sprintf("Attrib(%q, size:%v, len:%v)", attr.Name, attr.Size, attr.Len())
}

// Set is the ordered list of attributes bound from one buffer set.
type Set []Attrib

// Len returns the particle count shared by every attribute.
func (set Set) Len() int {
	if len(set) == 0 {
		return 0
	}
	return set[0].Len()
}

// Stride returns the total components per particle.
func (set Set) Stride() int {
	n := 0
	for _, attr := range set {
		n += attr.Size
	}
	return n
}

// Alloc sizes every tagged field of the struct pointer inst to hold n
// particles, then binds it.
func Alloc(inst interface{}, n int) (Set, error) {
	return bind(inst, n)
}

// Bind returns the tagged fields of the struct pointer inst as they are.
func Bind(inst interface{}) (Set, error) {
	return bind(inst, -1)
}

var floatsType = reflect.TypeOf([]float32(nil))

func bind(inst interface{}, alloc int) (Set, error) {
	ps := reflect.ValueOf(inst)
	if ps.Kind() != reflect.Ptr || ps.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: binding instance must be a struct pointer, got %T", ErrLayout, inst)
	}
	s := ps.Elem()
	typ := s.Type()

	var set Set
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		tag, ok := field.Tag.Lookup("attrib")
		if !ok {
			continue
		}

		attr, err := parseTag(field.Name, tag)
		if err == nil && field.Type != floatsType {
			err = fmt.Errorf("field type %v is not []float32", field.Type)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: unable to bind field %v: %v", ErrLayout, field.Name, err)
		}

		val := s.Field(i)
		if alloc >= 0 {
			val.Set(reflect.ValueOf(make([]float32, alloc*attr.Size)))
		}
		attr.Data = val.Interface().([]float32)
		if len(attr.Data)%attr.Size != 0 {
			return nil, fmt.Errorf("%w: %v holds %v values, not a multiple of %v",
				ErrLayout, attr.Name, len(attr.Data), attr.Size)
		}
		if len(set) > 0 && attr.Len() != set.Len() {
			return nil, fmt.Errorf("%w: %v holds %v particles, %v holds %v",
				ErrLayout, attr.Name, attr.Len(), set[0].Name, set.Len())
		}
		set = append(set, attr)
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("%w: %T has no attrib fields", ErrLayout, inst)
	}
	return set, nil
}

func parseTag(fieldName, tag string) (Attrib, error) {
	attr := Attrib{Name: strings.ToLower(fieldName), Size: 1}
	parts := strings.Split(tag, ",")
	if parts[0] != "" {
		attr.Name = parts[0]
	}
	if len(parts) > 2 {
		return attr, fmt.Errorf("malformed attrib tag %q", tag)
	}
	if len(parts) == 2 {
		size, err := strconv.Atoi(parts[1])
		if err != nil || size < 1 || size > 4 {
			return attr, fmt.Errorf("attrib %q size must be 1 through 4, got %q", attr.Name, parts[1])
		}
		attr.Size = size
	}
	return attr, nil
}
