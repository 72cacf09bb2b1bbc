package entity

import "fmt"

// Size is a creature size category. Values are category offsets from medium
// so subtracting two sizes yields the number of steps between them.
type Size int

const (
	SizeFine       Size = -4
	SizeDiminutive Size = -3
	SizeTiny       Size = -2
	SizeSmall      Size = -1
	SizeMedium     Size = 0
	SizeLarge      Size = 1
	SizeHuge       Size = 2
	SizeGargantuan Size = 3
	SizeColossal   Size = 4
)

var sizeKeys = map[Size]string{
	SizeFine:       "fine",
	SizeDiminutive: "dim",
	SizeTiny:       "tiny",
	SizeSmall:      "sm",
	SizeMedium:     "med",
	SizeLarge:      "lg",
	SizeHuge:       "huge",
	SizeGargantuan: "grg",
	SizeColossal:   "col",
}

func (s Size) String() string {
	if key, ok := sizeKeys[s]; ok {
		return key
	}
	return fmt.Sprintf("size(%d)", int(s))
}

// Clamp keeps s within fine..colossal
func (s Size) Clamp() Size {
	return min(max(s, SizeFine), SizeColossal)
}

// ParseSize accepts the short host keys ("med", "lg") used in actor data
func ParseSize(key string) (Size, error) {
	for size, k := range sizeKeys {
		if k == key {
			return size, nil
		}
	}
	return SizeMedium, fmt.Errorf("unknown size %q", key)
}
