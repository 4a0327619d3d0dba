package evidence

import (
	"testing"

	"github.com/ternarybob/gauntlet/internal/rules"
)

func TestClassifyConcentrationSentences(t *testing.T) {
	cls := NewRegexClassifier(rules.Default())

	tests := []struct {
		name           string
		sentence       string
		wantFound      bool
		wantType       string
		wantValue      float64
		wantConfidence float64
		wantActual     bool
	}{
		{
			name:           "actual single customer statement",
			sentence:       "Our largest customer accounted for 45% of total revenue in fiscal 2024",
			wantFound:      true,
			wantType:       rules.CustomerSingle,
			wantValue:      45,
			wantConfidence: 0.9,
			wantActual:     true,
		},
		{
			name:           "hypothetical statement gets lower confidence",
			sentence:       "If our largest customer were lost, up to 45% of revenue could be at risk",
			wantFound:      true,
			wantType:       rules.CustomerSingle,
			wantValue:      45,
			wantConfidence: 0.7,
			wantActual:     false,
		},
		{
			name:      "geographic breakdown is not concentration",
			sentence:  "International customers represented 45% of total revenue during the period",
			wantFound: false,
		},
		{
			name:      "segment breakdown is not concentration",
			sentence:  "The hardware segment generated 45% of revenue from repeat customers",
			wantFound: false,
		},
		{
			name:           "group of customers classifies as few",
			sentence:       "Our top customers together accounted for 30% of net sales this year",
			wantFound:      true,
			wantType:       rules.CustomerFew,
			wantValue:      30,
			wantConfidence: 0.9,
			wantActual:     true,
		},
		{
			name:      "small percentage is noise",
			sentence:  "One customer accounted for 3% of revenue during fiscal 2024",
			wantFound: false,
		},
		{
			name:      "no revenue term",
			sentence:  "Approximately 45% of our customers renewed their contracts early",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			finding, found := cls.Classify(tt.sentence)
			if found != tt.wantFound {
				t.Fatalf("Classify found = %v, want %v", found, tt.wantFound)
			}
			if !found {
				return
			}
			if finding.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", finding.Type, tt.wantType)
			}
			if finding.Value != tt.wantValue {
				t.Errorf("Value = %v, want %v", finding.Value, tt.wantValue)
			}
			if finding.Confidence != tt.wantConfidence {
				t.Errorf("Confidence = %v, want %v", finding.Confidence, tt.wantConfidence)
			}
			if finding.IsActual != tt.wantActual {
				t.Errorf("IsActual = %v, want %v", finding.IsActual, tt.wantActual)
			}
		})
	}
}

func TestSentencesSplit(t *testing.T) {
	cls := NewRegexClassifier(rules.Default())

	text := "Revenue grew strongly in the period. Short. Our largest customer accounted for 45% of revenue! What drove the growth?"
	sentences := cls.Sentences(text)

	if len(sentences) != 3 {
		t.Fatalf("got %d sentences, want 3 (fragment dropped): %v", len(sentences), sentences)
	}
}
