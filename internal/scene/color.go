package scene

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ParseColor parses "#RRGGBB", "0xRRGGBB" or a decimal integer.
func ParseColor(s string) (Color, error) {
	orig := s
	s = strings.TrimSpace(s)
	base := 10
	switch {
	case strings.HasPrefix(s, "#"):
		s, base = s[1:], 16
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s, base = s[2:], 16
	}
	v, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, fmt.Errorf("scene: bad color %q: %w", orig, err)
	}
	return Color(v), nil
}

func (c *Color) UnmarshalJSON(data []byte) error {
	var n uint32
	if err := json.Unmarshal(data, &n); err == nil {
		*c = Color(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("scene: color must be a number or string, got %s", data)
	}
	v, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(fmt.Sprintf("#%06x", uint32(c)))
}
