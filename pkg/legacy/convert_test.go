package legacy

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-cardgen/pkg/document"
)

func ptr(v float64) *float64 { return &v }

func legacyFixture() Template {
	return Template{
		ID:          "corp-v1",
		Name:        "Corporate Badge",
		Orientation: "landscape",
		Background:  &Background{Color: "#1a2b3c"},
		Front: &SideLayout{
			Logo: &Box{Source: "https://cdn.example.com/logo.svg"},
			Photo: &PhotoBox{
				Key:     "employee.photoReference",
				X:       ptr(700),
				Y:       ptr(100),
				Rounded: true,
			},
			Fields: []Field{
				{Key: "employee.name", Label: "Name", Bold: true, Uppercase: true, FontSize: ptr(32)},
				{Key: "employee.employeeId", Label: "ID", Fallback: "N/A"},
				{Key: "employee.bloodGroup"},
			},
			QRCode: &CodeBox{Key: "employee.employeeId", Size: ptr(140)},
		},
		Back: &SideLayout{
			Fields: []Field{
				{Key: "employee.website"},
			},
		},
	}
}

func TestConvertIsDeterministic(t *testing.T) {
	tpl := legacyFixture()

	first := Convert(tpl, document.SideFront)
	second := Convert(tpl, document.SideFront)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated conversion differs:\n%s", diff)
	}

	ids := func(doc document.TemplateDocument) []string {
		out := make([]string, len(doc.Elements))
		for i, el := range doc.Elements {
			out[i] = el.ID
		}
		return out
	}
	if diff := cmp.Diff(ids(first), ids(second)); diff != "" {
		t.Fatalf("element id set unstable:\n%s", diff)
	}
}

func TestConvertSidesProduceDistinctIDs(t *testing.T) {
	tpl := Template{
		ID:    "corp-v1",
		Name:  "Corporate Badge",
		Front: &SideLayout{Fields: []Field{{Key: "employee.name"}}},
		Back:  &SideLayout{Fields: []Field{{Key: "employee.name"}}},
	}
	front := Convert(tpl, document.SideFront)
	back := Convert(tpl, document.SideBack)
	if front.Elements[0].ID == back.Elements[0].ID {
		t.Fatal("same field on different sides must get different ids")
	}
	if front.ID == back.ID {
		t.Fatal("front and back documents must get different ids")
	}
}

func TestConvertFieldBindingWiring(t *testing.T) {
	doc := Convert(legacyFixture(), document.SideFront)

	var name document.TemplateElement
	found := false
	for _, el := range doc.Elements {
		if el.Type == document.TypeText && el.Name == "Name" {
			name, found = el, true
		}
	}
	if !found {
		t.Fatal("name field not converted")
	}

	b, ok := name.Bindings["props.content"]
	if !ok {
		t.Fatal("text field missing content binding")
	}
	if b.Field != "employee.name" {
		t.Fatalf("binding field = %q", b.Field)
	}
	if b.Transform != "uppercase" {
		t.Fatalf("uppercase flag should map to the uppercase transform, got %q", b.Transform)
	}
	if name.Style == nil || name.Style.Typography == nil {
		t.Fatal("field style not converted")
	}
	if name.Style.Typography.FontWeight != "bold" {
		t.Fatalf("bold flag lost: %+v", name.Style.Typography)
	}
	if name.Style.Typography.FontSize != 32 {
		t.Fatalf("font size = %v", name.Style.Typography.FontSize)
	}
}

func TestConvertAppliesCanonicalDefaults(t *testing.T) {
	tpl := Template{
		ID:   "min",
		Name: "Minimal",
		Front: &SideLayout{
			Fields: []Field{{Key: "a"}, {Key: "b"}},
			Photo:  &PhotoBox{},
		},
	}
	doc := Convert(tpl, document.SideFront)

	if doc.Canvas.Width != document.DefaultCanvasWidth || doc.Canvas.DPI != document.DefaultDPI {
		t.Fatalf("canvas defaults: %+v", doc.Canvas)
	}
	if doc.Background.Color != "#ffffff" {
		t.Fatalf("background default: %q", doc.Background.Color)
	}

	// Unpositioned fields stack down the card instead of overlapping.
	first := doc.Elements[1]
	second := doc.Elements[2]
	if first.Position.Y >= second.Position.Y {
		t.Fatalf("default field stacking broken: %v then %v", first.Position.Y, second.Position.Y)
	}

	photo := doc.Elements[0]
	if photo.Type != document.TypeImage {
		t.Fatalf("first element should be the photo, got %s", photo.Type)
	}
	if photo.Dimensions.Width != defaultPhotoWidth || photo.Dimensions.Height != defaultPhotoHeight {
		t.Fatalf("photo defaults: %+v", photo.Dimensions)
	}
	if _, ok := photo.Bindings["props.source"]; !ok {
		t.Fatal("photo missing source binding")
	}
}

func TestConvertPortraitSwapsCanvas(t *testing.T) {
	tpl := Template{ID: "p", Name: "Portrait", Orientation: "portrait"}
	doc := Convert(tpl, document.SideFront)
	if doc.Canvas.Width != document.DefaultCanvasHeight || doc.Canvas.Height != document.DefaultCanvasWidth {
		t.Fatalf("portrait canvas: %+v", doc.Canvas)
	}
	if doc.Canvas.Layout != document.LayoutPortrait {
		t.Fatalf("layout = %q", doc.Canvas.Layout)
	}
}

func TestConvertMissingSideYieldsEmptyDocument(t *testing.T) {
	tpl := Template{ID: "f", Name: "Front Only", Front: &SideLayout{Fields: []Field{{Key: "x"}}}}
	doc := Convert(tpl, document.SideBack)
	if len(doc.Elements) != 0 {
		t.Fatalf("missing side produced %d elements", len(doc.Elements))
	}
	if !doc.IsReady {
		t.Fatal("converted document should be ready")
	}
}

func TestConvertQRCode(t *testing.T) {
	doc := Convert(legacyFixture(), document.SideFront)
	var qr document.TemplateElement
	found := false
	for _, el := range doc.Elements {
		if el.Type == document.TypeQRCode {
			qr, found = el, true
		}
	}
	if !found {
		t.Fatal("qr code not converted")
	}
	if qr.Dimensions.Width != 140 || qr.Dimensions.Height != 140 {
		t.Fatalf("qr size: %+v", qr.Dimensions)
	}
	if !qr.Dimensions.AspectLock {
		t.Fatal("qr code should be aspect-locked")
	}
	if b := qr.Bindings["props.value"]; b.Field != "employee.employeeId" {
		t.Fatalf("qr binding: %+v", b)
	}
}
