package dictionary

import (
	"errors"
	"reflect"
	"testing"
)

const helloFixture = `[{
	"word": "hello",
	"phonetic": "/həˈloʊ/",
	"phonetics": [{"text": "/həˈloʊ/", "audio": "https://example.com/hello-us.mp3"}],
	"meanings": [{
		"partOfSpeech": "exclamation",
		"definitions": [{"definition": "used as a greeting", "example": "hello there!"}],
		"synonyms": [],
		"antonyms": []
	}]
}]`

func mustDecode(t *testing.T, body string) []RawEntry {
	t.Helper()
	entries, err := Decode([]byte(body))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	return entries
}

func TestMapResponse_Hello(t *testing.T) {
	record, err := MapResponse(mustDecode(t, helloFixture))
	if err != nil {
		t.Fatalf("MapResponse() error = %v", err)
	}

	if record.Word != "hello" {
		t.Errorf("Word = %q, want %q", record.Word, "hello")
	}
	if record.Phonetic != "/həˈloʊ/" {
		t.Errorf("Phonetic = %q, want %q", record.Phonetic, "/həˈloʊ/")
	}
	if record.Origin != "" {
		t.Errorf("Origin = %q, want empty", record.Origin)
	}
	if len(record.Phonetics) != 1 || record.Phonetics[0].Text != "/həˈloʊ/" {
		t.Fatalf("Phonetics = %+v", record.Phonetics)
	}
	if record.Phonetics[0].Audio != "https://example.com/hello-us.mp3" {
		t.Errorf("Phonetics[0].Audio = %q", record.Phonetics[0].Audio)
	}
	if len(record.Meanings) != 1 {
		t.Fatalf("len(Meanings) = %d, want 1", len(record.Meanings))
	}

	m := record.Meanings[0]
	if m.PartOfSpeech != "exclamation" {
		t.Errorf("PartOfSpeech = %q", m.PartOfSpeech)
	}
	if len(m.Definitions) != 1 {
		t.Fatalf("len(Definitions) = %d, want 1", len(m.Definitions))
	}
	d := m.Definitions[0]
	if d.Text != "used as a greeting" {
		t.Errorf("Definition text = %q", d.Text)
	}
	if d.Example != "hello there!" {
		t.Errorf("Example = %q", d.Example)
	}
	if !d.HasExample() {
		t.Error("HasExample() = false, want true")
	}
}

func TestMap_PreservesCountsAndOrder(t *testing.T) {
	body := `[{
		"word": "run",
		"phonetics": [{"text": "/ɹʌn/"}, {}, {"text": "/ɹɐn/"}],
		"meanings": [
			{"partOfSpeech": "verb", "definitions": [{"definition": "move fast"}]},
			{"partOfSpeech": "noun", "definitions": [{"definition": "an act of running"}]},
			{"partOfSpeech": "adjective", "definitions": []}
		]
	}]`

	record, err := MapResponse(mustDecode(t, body))
	if err != nil {
		t.Fatalf("MapResponse() error = %v", err)
	}

	var texts []string
	for _, p := range record.Phonetics {
		texts = append(texts, p.Text)
	}
	if want := []string{"/ɹʌn/", "", "/ɹɐn/"}; !reflect.DeepEqual(texts, want) {
		t.Errorf("phonetic texts = %q, want %q", texts, want)
	}

	var parts []string
	for _, m := range record.Meanings {
		parts = append(parts, m.PartOfSpeech)
	}
	if want := []string{"verb", "noun", "adjective"}; !reflect.DeepEqual(parts, want) {
		t.Errorf("parts of speech = %q, want %q", parts, want)
	}

	if got := record.Meanings[2].Definitions; got == nil || len(got) != 0 {
		t.Errorf("empty definitions = %#v, want empty non-nil slice", got)
	}
}

func TestMap_OptionalListsDefaultToEmpty(t *testing.T) {
	body := `[{
		"word": "bare",
		"meanings": [{"partOfSpeech": "adjective", "definitions": [{"definition": "uncovered"}]}]
	}]`

	record, err := MapResponse(mustDecode(t, body))
	if err != nil {
		t.Fatalf("MapResponse() error = %v", err)
	}

	if record.Phonetics == nil || len(record.Phonetics) != 0 {
		t.Errorf("Phonetics = %#v, want empty non-nil slice", record.Phonetics)
	}
	m := record.Meanings[0]
	for name, list := range map[string][]string{
		"group synonyms": m.Synonyms,
		"group antonyms": m.Antonyms,
		"entry synonyms": m.Definitions[0].Synonyms,
		"entry antonyms": m.Definitions[0].Antonyms,
	} {
		if list == nil || len(list) != 0 {
			t.Errorf("%s = %#v, want empty non-nil slice", name, list)
		}
	}
	if m.Definitions[0].HasExample() {
		t.Error("HasExample() = true, want false")
	}
}

func TestMap_GroupSynonymsAreDeduplicated(t *testing.T) {
	meanings := []RawMeaning{{
		PartOfSpeech: "verb",
		Synonyms:     []string{"run", "sprint", "run", "dash", "sprint"},
		Antonyms:     []string{"walk", "walk"},
	}}
	record, err := Map(RawEntry{Word: "run", Meanings: &meanings})
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}

	if want := []string{"run", "sprint", "dash"}; !reflect.DeepEqual(record.Meanings[0].Synonyms, want) {
		t.Errorf("Synonyms = %q, want %q", record.Meanings[0].Synonyms, want)
	}
	if want := []string{"walk", "walk"}; !reflect.DeepEqual(record.Meanings[0].Antonyms, want) {
		t.Errorf("Antonyms = %q, want %q", record.Meanings[0].Antonyms, want)
	}
}

func TestMap_ExampleIsNotDefinition(t *testing.T) {
	meanings := []RawMeaning{{
		PartOfSpeech: "noun",
		Definitions:  []RawDefinition{{Definition: "a greeting", Example: "she said hello"}},
	}}
	record, err := Map(RawEntry{Word: "hello", Meanings: &meanings})
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}

	d := record.Meanings[0].Definitions[0]
	if d.Text != "a greeting" || d.Example != "she said hello" {
		t.Errorf("entry = %+v, want definition and example in their own fields", d)
	}
}

func TestMap_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"missing meanings", `[{"word": "ghost"}]`, ErrMapping},
		{"null meanings", `[{"word": "ghost", "meanings": null}]`, ErrMapping},
		{"missing word", `[{"meanings": []}]`, ErrMapping},
		{"empty response", `[]`, ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MapResponse(mustDecode(t, tt.body))
			if !errors.Is(err, tt.want) {
				t.Errorf("MapResponse() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecode_RejectsNonArray(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"object", `{"title": "No Definitions Found"}`},
		{"garbage", `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.body))
			if !errors.Is(err, ErrMapping) {
				t.Errorf("Decode() error = %v, want ErrMapping", err)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, NoError},
		{"not found", ErrNotFound, NotFoundError},
		{"wrapped mapping", errors.Join(errors.New("ctx"), ErrMapping), MappingError},
		{"transport", ErrTransport, TransportError},
		{"unknown", errors.New("boom"), TransportError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
