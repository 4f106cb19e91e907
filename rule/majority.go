package rule

import (
	"fmt"

	"github.com/katalvlaran/lesionfront/volume"
)

// DefaultMajorityThreshold is the number of votes required beyond half the
// neighbourhood.
const DefaultMajorityThreshold = 1

// MajorityVote fills background holes whose neighbourhood is mostly foreground.
type MajorityVote struct {
	foreground volume.Label
	threshold  int

	labels []volume.Label
	birth  int
}

// NewMajorityVote returns a hole-filling rule that writes foreground and
// requires ceil(K/2)+threshold foreground neighbours.
func NewMajorityVote(foreground volume.Label, threshold int) *MajorityVote {
	return &MajorityVote{foreground: foreground, threshold: threshold}
}

// Name implements Rule.
func (r *MajorityVote) Name() string { return "majority-vote" }

// Foreground returns the value written to filled pixels.
func (r *MajorityVote) Foreground() volume.Label { return r.foreground }

// BirthThreshold returns the number of foreground neighbours needed to fill a
// pixel. It is zero until Prepare succeeds.
func (r *MajorityVote) BirthThreshold() int { return r.birth }

// Prepare implements Rule.
func (r *MajorityVote) Prepare(env Env) error {
	if err := checkEnv(env); err != nil {
		return err
	}
	if r.foreground == env.Background {
		return ErrForegroundIsBackground
	}
	if r.threshold < 0 {
		return ErrNegativeThreshold
	}
	k := env.Neighborhood.Size()
	birth := (k+1)/2 + r.threshold
	if birth > k {
		return fmt.Errorf("%w: need %d of %d", ErrThresholdUnreachable, birth, k)
	}
	r.labels = env.Labels.Pix
	r.birth = birth
	return nil
}

// Decide implements Rule.
func (r *MajorityVote) Decide(c Candidate) (volume.Label, bool) {
	votes := 0
	for _, n := range c.Neighbors {
		if r.labels[n] == r.foreground {
			votes++
			if votes >= r.birth {
				return r.foreground, true
			}
		}
	}
	return 0, false
}
