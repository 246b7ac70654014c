package store

import (
	"errors"
	"strings"
	"testing"

	"github.com/theirongolddev/bplan/internal/model"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	states := []model.State{
		model.DefaultState(),
		{Income: 3000, Fixed: []model.Entry{{Name: "Rent", Amount: 1200}}, Variable: []model.Entry{{Name: "Food", Amount: 300}}},
		{Income: 0.5, Fixed: []model.Entry{{Name: "a", Amount: 0.1}, {Name: "b", Amount: 0.2}}, Variable: []model.Entry{}},
		{Income: 1e9, Variable: []model.Entry{{Name: "Big", Amount: 123456789.12}, {Name: "Zero", Amount: 0}}},
	}

	for i, s := range states {
		data, err := Encode(s)
		if err != nil {
			t.Fatalf("state %d: Encode: %v", i, err)
		}
		got, err := Decode(data)
		if err != nil {
			t.Fatalf("state %d: Decode: %v\n%s", i, err, data)
		}
		if !got.Equal(s) {
			t.Fatalf("state %d: round trip = %+v, want %+v", i, got, s)
		}
	}
}

func TestEncode_Shape(t *testing.T) {
	data, err := Encode(model.State{Income: 3000, Fixed: []model.Entry{{Name: "Rent", Amount: 1200}}})
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)

	for _, want := range []string{
		`"income": 3000`,
		`"fixed": [`,
		`"name": "Rent"`,
		`"amount": 1200`,
		`"variable": []`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("encoded output missing %s:\n%s", want, out)
		}
	}
}

func TestDecode_Rejects(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"not json", `income: 3000`},
		{"array", `[1,2,3]`},
		{"null", `null`},
		{"missing income", `{"fixed":[],"variable":[]}`},
		{"missing fixed", `{"income":1,"variable":[]}`},
		{"missing variable", `{"income":1,"fixed":[]}`},
		{"income string", `{"income":"3000","fixed":[],"variable":[]}`},
		{"income null", `{"income":null,"fixed":[],"variable":[]}`},
		{"income negative", `{"income":-1,"fixed":[],"variable":[]}`},
		{"fixed not list", `{"income":1,"fixed":{},"variable":[]}`},
		{"fixed null", `{"income":1,"fixed":null,"variable":[]}`},
		{"entry not object", `{"income":1,"fixed":[5],"variable":[]}`},
		{"entry blank name", `{"income":1,"fixed":[{"name":"  ","amount":1}],"variable":[]}`},
		{"entry missing amount", `{"income":1,"fixed":[],"variable":[{"name":"Food"}]}`},
		{"entry negative amount", `{"income":1,"fixed":[],"variable":[{"name":"Food","amount":-3}]}`},
		{"number overflow", `{"income":1e400,"fixed":[],"variable":[]}`},
		{"savings rate overflow", `{"income":1,"fixed":[{"name":"x","amount":1e308}],"variable":[]}`},
		{"total overflow", `{"income":0,"fixed":[{"name":"a","amount":1e308}],"variable":[{"name":"b","amount":1e308}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.in))
			if !errors.Is(err, ErrInvalidPayload) {
				t.Fatalf("Decode(%s) err = %v, want ErrInvalidPayload", tc.in, err)
			}
		})
	}
}

func TestDecode_TrimsNamesAndDropsUnknownKeys(t *testing.T) {
	got, err := Decode([]byte(`{"income":10,"fixed":[{"name":"  Rent ","amount":5,"note":"x"}],"variable":[],"theme":"dark"}`))
	if err != nil {
		t.Fatal(err)
	}
	want := model.State{Income: 10, Fixed: []model.Entry{{Name: "Rent", Amount: 5}}}
	if !got.Equal(want) {
		t.Fatalf("Decode = %+v, want %+v", got, want)
	}
}
