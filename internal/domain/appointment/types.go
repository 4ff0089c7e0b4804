package appointment

import (
	"strings"
)

type SizeClass string

const (
	SizeSmall  SizeClass = "Small"
	SizeMedium SizeClass = "Medium"
	SizeLarge  SizeClass = "Large"
)

func (s SizeClass) String() string {
	return string(s)
}

func (s SizeClass) IsValid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

// ParseSizeClass accepts the names case-insensitively and the legacy codes "1".."3".
func ParseSizeClass(raw string) (SizeClass, error) {
	v := strings.TrimSpace(raw)
	switch strings.ToLower(v) {
	case "small", "1":
		return SizeSmall, nil
	case "medium", "2":
		return SizeMedium, nil
	case "large", "3":
		return SizeLarge, nil
	default:
		return "", ErrInvalidSizeClass
	}
}

func AllSizeClasses() []SizeClass {
	return []SizeClass{SizeSmall, SizeMedium, SizeLarge}
}
