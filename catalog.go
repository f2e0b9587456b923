package radiogaga

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"
)

// Station is a named radio stream.
type Station struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Validate returns an error if the station contains invalid fields.
func (s *Station) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "station name required")
	}
	if s.URL == "" {
		return Errorf(EINVALID, "station %q: stream URL required", s.Name)
	}
	u, err := url.Parse(s.URL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return Errorf(EINVALID, "station %q: stream URL must be absolute: %q", s.Name, s.URL)
	}
	return nil
}

// Catalog maps station names to stream URLs. Names are unique and the
// catalog remembers the order in which they were added.
//
// A Catalog is built once (by ExtractCatalog or a CatalogStore) and treated
// as read-only afterwards, so it is safe for concurrent readers.
type Catalog struct {
	names []string
	urls  map[string]string
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{urls: make(map[string]string)}
}

// Add appends a station. It reports false, leaving the catalog unchanged,
// if the name is already present.
func (c *Catalog) Add(name, streamURL string) bool {
	if c.urls == nil {
		c.urls = make(map[string]string)
	}
	if _, ok := c.urls[name]; ok {
		return false
	}
	c.names = append(c.names, name)
	c.urls[name] = streamURL
	return true
}

// Has reports whether the catalog contains a station with the given name.
func (c *Catalog) Has(name string) bool {
	_, ok := c.urls[name]
	return ok
}

// Lookup returns the stream URL for a station.
// Returns ENOTFOUND if the station does not exist.
func (c *Catalog) Lookup(name string) (string, error) {
	u, ok := c.urls[name]
	if !ok {
		return "", Errorf(ENOTFOUND, "Unknown station: %s", name)
	}
	return u, nil
}

// URL returns the stream URL for a station, or an empty string.
func (c *Catalog) URL(name string) string {
	return c.urls[name]
}

// Names returns station names in insertion order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// Stations returns all stations in insertion order.
func (c *Catalog) Stations() []Station {
	stations := make([]Station, 0, len(c.names))
	for _, name := range c.names {
		stations = append(stations, Station{Name: name, URL: c.urls[name]})
	}
	return stations
}

// Len returns the number of stations.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}

// MarshalJSON encodes the catalog as a JSON object, keys in insertion order.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, name := range c.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(name); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1) // Encode appends a newline
		buf.WriteByte(':')
		if err := enc.Encode(c.urls[name]); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of name to URL, keeping key order.
// A repeated key keeps its first position and its last value.
func (c *Catalog) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return Errorf(EINVALID, "catalog: %v", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return Errorf(EINVALID, "catalog: expected JSON object")
	}

	*c = Catalog{urls: make(map[string]string)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Errorf(EINVALID, "catalog: %v", err)
		}
		name := tok.(string) // object keys are always strings

		var u string
		if err := dec.Decode(&u); err != nil {
			return Errorf(EINVALID, "catalog: station %q: URL must be a string", name)
		}
		if !c.Add(name, u) {
			c.urls[name] = u
		}
	}

	if _, err := dec.Token(); err != nil {
		return Errorf(EINVALID, "catalog: %v", err)
	}
	return nil
}

// CatalogStore persists a catalog.
type CatalogStore interface {
	// Load reads the stored catalog.
	// Returns ENOTFOUND if nothing has been stored yet.
	Load(ctx context.Context) (*Catalog, error)

	// Save replaces the stored catalog with c. Implementations must not
	// leave a partially written catalog behind on failure.
	Save(ctx context.Context, c *Catalog) error
}
