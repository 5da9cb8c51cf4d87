package syntax

import "testing"

func TestParseTag(t *testing.T) {
	cases := []struct {
		text string
		want Tag
		ok   bool
	}{
		{text: "{% callout %}", want: Tag{Name: "callout"}, ok: true},
		{text: "{% /callout %}", want: Tag{Name: "callout", Closing: true}, ok: true},
		{text: `{% callout type="note" %}`, want: Tag{Name: "callout", Attrs: `type="note"`}, ok: true},
		{text: `{% img src="a.png" /%}`, want: Tag{Name: "img", SelfClosing: true, Attrs: `src="a.png"`}, ok: true},
		{text: "{%br/%}", want: Tag{Name: "br", SelfClosing: true}, ok: true},
		{text: "{% if $x %}\n", want: Tag{Name: "if", Attrs: "$x"}, ok: true},
		{text: "{% %}", ok: false},
		{text: "plain text", ok: false},
		{text: "{% open", ok: false},
	}
	for _, tc := range cases {
		got, ok := ParseTag(tc.text)
		if ok != tc.ok {
			t.Fatalf("ParseTag(%q) ok: got %v, want %v", tc.text, ok, tc.ok)
		}
		if ok && got != tc.want {
			t.Fatalf("ParseTag(%q): got %+v, want %+v", tc.text, got, tc.want)
		}
	}
}

func TestTagAttributes(t *testing.T) {
	tag, ok := ParseTag(`{% callout type="note" title="Read me" open level=2 %}`)
	if !ok {
		t.Fatalf("tag must parse")
	}
	got := tag.Attributes()
	want := []Attribute{
		{Key: "type", Value: "note"},
		{Key: "title", Value: "Read me"},
		{Key: "open", Value: "true"},
		{Key: "level", Value: "2"},
	}
	if len(got) != len(want) {
		t.Fatalf("attributes: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("attribute %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}
