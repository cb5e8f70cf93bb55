// internal/feedback/feedback.go
//
// Per-letter scoring of a guess against the target word.
// Defines:
//   - Mark: classification of a single guess letter (correct/present/absent).
//   - Classify: the two-pass claiming algorithm.
//
// Classify is a pure function of (guess, target); it keeps no state between
// calls and is safe to call concurrently.
package feedback

// Mark is the evaluation result for one letter of a guess.
type Mark string

const (
	MarkCorrect Mark = "correct" // right letter, right position
	MarkPresent Mark = "present" // right letter, different position
	MarkAbsent  Mark = "absent"  // no unclaimed occurrence in the target
)

// Classify scores guess against target, one Mark per guess position.
//
// Each target letter can back at most one mark. A claim table (one boolean
// per target position) enforces the one-to-one pairing:
//
// Pass 1 walks every position and claims all exact matches as Correct.
// Pass 2 walks the unresolved guess letters; each scans target positions in
// increasing order and claims the first unclaimed equal letter as Present.
// Whatever remains is Absent.
//
// The full exact pass runs before any elsewhere pass so a letter is never
// stolen as Present from a position where it would have matched Correct.
// With repeated letters this yields exactly as many Correct/Present marks
// as the target has copies of the letter.
//
// Precondition: both words have the same length and are lowercase a-z;
// validation is the caller's job.
func Classify(guess, target string) []Mark {
	n := len(guess)
	marks := make([]Mark, n)
	claimed := make([]bool, n)

	for i := 0; i < n; i++ {
		if guess[i] == target[i] {
			marks[i] = MarkCorrect
			claimed[i] = true
		}
	}

	for i := 0; i < n; i++ {
		if marks[i] == MarkCorrect {
			continue
		}
		marks[i] = MarkAbsent
		for j := 0; j < n; j++ {
			if guess[i] == target[j] && !claimed[j] {
				claimed[j] = true
				marks[i] = MarkPresent
				break
			}
		}
	}
	return marks
}

// AllCorrect reports whether every mark is MarkCorrect.
func AllCorrect(marks []Mark) bool {
	for _, m := range marks {
		if m != MarkCorrect {
			return false
		}
	}
	return true
}
