package geo

// Spatial reference links used as CRS tags.
const (
	MercatorHref   = "http://spatialreference.org/ref/sr-org/6928/ogcwkt/"
	GeographicHref = "http://spatialreference.org/ref/epsg/4326/ogcwkt/"
)

// CRS is a GeoJSON (2008) coordinate reference system member.
// A nil *CRS means geographic coordinates, the implicit default.
type CRS struct {
	Type       string        `json:"type" yaml:"type"`
	Properties CRSProperties `json:"properties" yaml:"properties"`
}

// CRSProperties holds the link or name of a CRS.
type CRSProperties struct {
	Href string `json:"href,omitempty" yaml:"href,omitempty"`
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// MercatorCRS returns the link descriptor attached after a Web Mercator projection.
func MercatorCRS() *CRS {
	return &CRS{
		Type: "link",
		Properties: CRSProperties{
			Href: MercatorHref,
			Type: "ogcwkt",
		},
	}
}

// GeographicCRS returns the EPSG:4326 link descriptor.
// Projection never attaches it; geographic is the untagged default.
func GeographicCRS() *CRS {
	return &CRS{
		Type: "link",
		Properties: CRSProperties{
			Href: GeographicHref,
			Type: "ogcwkt",
		},
	}
}

// IsMercator reports whether c is the Web Mercator link descriptor.
func (c *CRS) IsMercator() bool {
	return c != nil && c.Type == "link" && c.Properties.Href == MercatorHref
}

// CRSOf returns the CRS tag of o, or nil when o is untagged or unknown.
func CRSOf(o Object) *CRS {
	switch g := o.(type) {
	case *Point:
		return g.CRS
	case *MultiPoint:
		return g.CRS
	case *LineString:
		return g.CRS
	case *MultiLineString:
		return g.CRS
	case *Polygon:
		return g.CRS
	case *MultiPolygon:
		return g.CRS
	case *GeometryCollection:
		return g.CRS
	case *Feature:
		return g.CRS
	case *FeatureCollection:
		return g.CRS
	}

	return nil
}

// setCRS replaces the CRS tag of o.
func setCRS(o Object, crs *CRS) error {
	switch g := o.(type) {
	case *Point:
		g.CRS = crs
	case *MultiPoint:
		g.CRS = crs
	case *LineString:
		g.CRS = crs
	case *MultiLineString:
		g.CRS = crs
	case *Polygon:
		g.CRS = crs
	case *MultiPolygon:
		g.CRS = crs
	case *GeometryCollection:
		g.CRS = crs
	case *Feature:
		g.CRS = crs
	case *FeatureCollection:
		g.CRS = crs
	default:
		return unsupported(o)
	}

	return nil
}
