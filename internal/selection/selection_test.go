package selection

import (
	"fmt"
	"quizbank/internal/model"
	"testing"
)

func makeQuestion(id int, valid bool) model.Question {
	q := model.Question{
		Text:          fmt.Sprintf("question %d", id),
		CorrectAnswer: "b",
		QuestionID:    model.NewInt(int64(id)),
		Options:       map[model.Letter]string{},
		Explanations:  map[model.Letter]string{},
	}
	for _, l := range model.Letters {
		q.Options[l] = "option " + string(l)
		q.Explanations[l] = "because " + string(l)
	}
	if !valid {
		delete(q.Explanations, model.LetterD)
	}
	return q
}

func ids(records []model.Question) []string {
	out := make([]string, len(records))
	for i, q := range records {
		out[i] = q.QuestionID.String()
	}
	return out
}

func TestFilterValid(t *testing.T) {
	records := []model.Question{
		makeQuestion(1, true),
		makeQuestion(2, false),
		makeQuestion(3, true),
		{Text: "bare"},
	}

	valid := FilterValid(records)
	if got := fmt.Sprint(ids(valid)); got != "[1 3]" {
		t.Fatalf("expected [1 3], got %s", got)
	}
	for _, q := range valid {
		if !q.Valid() {
			t.Errorf("invalid record %s admitted", q.QuestionID)
		}
	}

	again := FilterValid(valid)
	if fmt.Sprint(ids(again)) != fmt.Sprint(ids(valid)) {
		t.Errorf("FilterValid is not idempotent: %v vs %v", ids(again), ids(valid))
	}
}

func TestFilterValidRejectsBadAnswer(t *testing.T) {
	q := makeQuestion(1, true)
	q.CorrectAnswer = "F"
	if len(FilterValid([]model.Question{q})) != 0 {
		t.Error("answer F must be rejected")
	}
}

func TestFilterByDomain(t *testing.T) {
	a := makeQuestion(1, true)
	a.Domain = " 1.0 "
	b := makeQuestion(2, true)
	b.Domain = "2.0"
	c := makeQuestion(3, true)
	c.Domain = "1.0.1"

	got := FilterByDomain([]model.Question{a, b, c}, "1.0")
	if fmt.Sprint(ids(got)) != "[1]" {
		t.Errorf("expected only record 1, got %v", ids(got))
	}
	if len(FilterByDomain([]model.Question{a, b, c}, "")) != 3 {
		t.Error("empty domain should not filter")
	}
}

func TestFilterByDifficulty(t *testing.T) {
	a := makeQuestion(1, true)
	a.Difficulty = "Hard"
	b := makeQuestion(2, true)
	b.Difficulty = "easy"

	got := FilterByDifficulty([]model.Question{a, b}, "HARD")
	if fmt.Sprint(ids(got)) != "[1]" {
		t.Errorf("expected only record 1, got %v", ids(got))
	}
}

func TestSampleCardinalityAndMembership(t *testing.T) {
	records := make([]model.Question, 0, 7)
	for i := 1; i <= 7; i++ {
		records = append(records, makeQuestion(i, true))
	}
	sampler := NewSampler()

	for _, n := range []int{0, 1, 3, 7, 30} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			want := n
			if want > len(records) {
				want = len(records)
			}
			got := sampler.Sample(records, n)
			if len(got) != want {
				t.Fatalf("expected %d records, got %d", want, len(got))
			}

			seen := map[string]bool{}
			members := map[string]bool{}
			for _, q := range records {
				members[q.QuestionID.String()] = true
			}
			for _, q := range got {
				id := q.QuestionID.String()
				if !members[id] {
					t.Errorf("record %s not drawn from input", id)
				}
				if seen[id] {
					t.Errorf("record %s returned twice", id)
				}
				seen[id] = true
			}
		})
	}

	if fmt.Sprint(ids(records)) != "[1 2 3 4 5 6 7]" {
		t.Errorf("Sample must not reorder its input, got %v", ids(records))
	}
}

func TestSampleEmpty(t *testing.T) {
	got := NewSampler().Sample(nil, 5)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
	if _, ok := NewSampler().PickOne(nil); ok {
		t.Error("PickOne on empty input should report false")
	}
}

func TestPickOneUsesShuffle(t *testing.T) {
	reverse := &Sampler{shuffle: func(n int, swap func(i, j int)) {
		for i := 0; i < n/2; i++ {
			swap(i, n-1-i)
		}
	}}
	records := []model.Question{makeQuestion(1, true), makeQuestion(2, true), makeQuestion(3, true)}

	q, ok := reverse.PickOne(records)
	if !ok || q.QuestionID.String() != "3" {
		t.Errorf("expected record 3 from reversed pool, got %s", q.QuestionID)
	}
}
