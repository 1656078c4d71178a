package document

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func badgeDocument() TemplateDocument {
	doc := NewBlankDocument("Staff Badge", SideFront)
	doc.Category = "corporate"
	doc.Tags = []string{"staff", "hr"}
	doc.Variables = []TemplateVariable{
		{Name: "company", Value: "Initech", Description: "Company display name"},
	}
	doc.Elements = append(doc.Elements,
		TemplateElement{
			ID:         "el-name",
			Type:       TypeText,
			Name:       "Name",
			LayerID:    doc.Layers[0].ID,
			Position:   Position{X: 40, Y: 60, Anchor: AnchorTopLeft},
			Dimensions: Dimensions{Width: 300, Height: 40},
			ZIndex:     2,
			Style: &StyleDescriptor{
				Typography: &TypographyStyle{FontFamily: "Inter", FontSize: 28, FontWeight: "bold"},
			},
			Opacity:    1,
			Visible:    true,
			Selectable: true,
			Bindings: map[string]DataBinding{
				"props.content": {Field: "employee.name", Transform: "uppercase", Fallback: "UNKNOWN"},
			},
			Props: TextProps{Placeholder: "Full Name"},
		},
		TemplateElement{
			ID:         "el-photo",
			Type:       TypeImage,
			Name:       "Photo",
			LayerID:    doc.Layers[0].ID,
			Position:   Position{X: 720, Y: 120},
			Dimensions: Dimensions{Width: 240, Height: 300, AspectLock: true},
			ZIndex:     1,
			Opacity:    1,
			Visible:    true,
			Selectable: true,
			Condition: &ConditionalVisibility{
				Field:    "employee.photoReference",
				Operator: OpExists,
			},
			Bindings: map[string]DataBinding{
				"props.source": {Field: "employee.photoReference"},
			},
			Props: ImageProps{Rounded: true},
		},
	)
	return doc
}

func TestDocumentJSONRoundTrip(t *testing.T) {
	original := badgeDocument()

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatal(err)
	}
	var decoded TemplateDocument
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(original, decoded); diff != "" {
		t.Fatalf("round trip lost information:\n%s", diff)
	}
}

func TestElementUnmarshalSelectsPropsType(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Props
	}{
		{
			name: "text",
			in:   `{"id":"a","type":"text","props":{"content":"Hi","placeholder":"Name"}}`,
			want: TextProps{Content: "Hi", Placeholder: "Name"},
		},
		{
			name: "qrcode",
			in:   `{"id":"b","type":"qrcode","props":{"value":"EMP-1","ecLevel":"H","quietZone":4}}`,
			want: QRCodeProps{Value: "EMP-1", ECLevel: "H", QuietZone: 4},
		},
		{
			name: "shape",
			in:   `{"id":"c","type":"shape","props":{"shape":"ellipse"}}`,
			want: ShapeProps{Shape: "ellipse"},
		},
		{
			name: "missing props gets defaults",
			in:   `{"id":"d","type":"barcode"}`,
			want: BarcodeProps{Symbology: "code128"},
		},
		{
			name: "null props gets defaults",
			in:   `{"id":"e","type":"divider","props":null}`,
			want: DividerProps{Orientation: "horizontal", Thickness: 1},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var el TemplateElement
			if err := json.Unmarshal([]byte(tc.in), &el); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, el.Props); diff != "" {
				t.Fatalf("props mismatch:\n%s", diff)
			}
		})
	}
}

func TestElementUnmarshalRejectsUnknownType(t *testing.T) {
	var el TemplateElement
	err := json.Unmarshal([]byte(`{"id":"x","type":"hologram","props":{}}`), &el)
	if err == nil {
		t.Fatal("expected error for unknown element type")
	}
	if !strings.Contains(err.Error(), "hologram") {
		t.Fatalf("error should name the type: %v", err)
	}
}

func TestDocumentCloneIsIndependent(t *testing.T) {
	original := badgeDocument()
	clone := original.Clone()

	clone.Elements[0].Bindings["props.content"] = DataBinding{Field: "other"}
	clone.Elements[0].Style.Typography.FontSize = 99
	clone.Layers[0].Locked = true
	clone.Variables[0].Value = "Initrode"
	clone.Tags[0] = "changed"

	if original.Elements[0].Bindings["props.content"].Field != "employee.name" {
		t.Fatal("clone shares binding map with original")
	}
	if original.Elements[0].Style.Typography.FontSize != 28 {
		t.Fatal("clone shares style with original")
	}
	if original.Layers[0].Locked {
		t.Fatal("clone shares layer slice with original")
	}
	if original.Variables[0].Value != "Initech" {
		t.Fatal("clone shares variables with original")
	}
	if original.Tags[0] != "staff" {
		t.Fatal("clone shares tags with original")
	}
}

func TestElementCloneCopiesCondition(t *testing.T) {
	el := badgeDocument().Elements[1]
	clone := el.Clone()
	clone.Condition.Operator = OpNotExists
	if el.Condition.Operator != OpExists {
		t.Fatal("clone shares condition with original")
	}
}

func TestNewBlankDocumentDefaults(t *testing.T) {
	doc := NewBlankDocument("Fresh", SideBack)

	if doc.Canvas.Width != DefaultCanvasWidth || doc.Canvas.Height != DefaultCanvasHeight {
		t.Fatalf("canvas = %+v", doc.Canvas)
	}
	if doc.Canvas.DPI != DefaultDPI {
		t.Fatalf("dpi = %d", doc.Canvas.DPI)
	}
	if len(doc.Layers) != 1 || !doc.Layers[0].Visible {
		t.Fatalf("layers = %+v", doc.Layers)
	}
	if !doc.IsReady {
		t.Fatal("blank document should be ready")
	}
	if doc.SchemaVersion != SchemaVersion {
		t.Fatalf("schema version = %d", doc.SchemaVersion)
	}
}

func TestNewIDIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID("el")
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestDuplicateIDIsDeterministic(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	first := DuplicateID("el-name", at)
	second := DuplicateID("el-name", at)
	if first != second {
		t.Fatalf("%q != %q", first, second)
	}
	if first == "el-name" {
		t.Fatal("duplicate id must differ from the original")
	}
}

func TestNewElementDefaults(t *testing.T) {
	el := NewElement(TypeQRCode, "layer-1")
	if el.Type != TypeQRCode || el.LayerID != "layer-1" {
		t.Fatalf("element = %+v", el)
	}
	if !el.Visible || !el.Selectable || el.Opacity != 1 {
		t.Fatalf("visibility defaults: %+v", el)
	}
	if PropsType(el.Props) != TypeQRCode {
		t.Fatalf("props = %#v", el.Props)
	}
}
