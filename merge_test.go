package jobpost_test

import (
	"testing"

	"github.com/fwojciec/jobpost"
	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	t.Run("secondary fills empty fields", func(t *testing.T) {
		t.Parallel()

		primary := jobpost.NewJob()
		secondary := jobpost.NewJob()
		secondary.Company = "Acme Inc"
		secondary.Position = "Backend Engineer"
		secondary.JobLocation = "Pune"
		secondary.JobDescription = "Build services."
		secondary.JobURL = "https://example.com/jobs/1"

		merged := jobpost.Merge(primary, secondary)

		assert.Equal(t, "Acme Inc", merged.Company)
		assert.Equal(t, "Backend Engineer", merged.Position)
		assert.Equal(t, "Pune", merged.JobLocation)
		assert.Equal(t, "Build services.", merged.JobDescription)
		assert.Equal(t, "https://example.com/jobs/1", merged.JobURL)
	})

	t.Run("primary wins when both company values present", func(t *testing.T) {
		t.Parallel()

		primary := jobpost.NewJob()
		primary.Company = "Acme Inc"
		secondary := jobpost.NewJob()
		secondary.Company = "Acme"

		merged := jobpost.Merge(primary, secondary)

		assert.Equal(t, "Acme Inc", merged.Company)
	})

	t.Run("shorter remote-equivalent location wins", func(t *testing.T) {
		t.Parallel()

		primary := jobpost.NewJob()
		primary.JobLocation = "Remote - Anywhere in the world"
		secondary := jobpost.NewJob()
		secondary.JobLocation = "Remote"

		merged := jobpost.Merge(primary, secondary)

		assert.Equal(t, "Remote", merged.JobLocation)
	})

	t.Run("longer remote-equivalent location does not win", func(t *testing.T) {
		t.Parallel()

		primary := jobpost.NewJob()
		primary.JobLocation = "Remote"
		secondary := jobpost.NewJob()
		secondary.JobLocation = "Remote - Anywhere in the world"

		merged := jobpost.Merge(primary, secondary)

		assert.Equal(t, "Remote", merged.JobLocation)
	})

	t.Run("shorter non-remote location does not win", func(t *testing.T) {
		t.Parallel()

		primary := jobpost.NewJob()
		primary.JobLocation = "Bangalore, India"
		secondary := jobpost.NewJob()
		secondary.JobLocation = "Pune"

		merged := jobpost.Merge(primary, secondary)

		assert.Equal(t, "Bangalore, India", merged.JobLocation)
	})

	t.Run("secondary job type overrides the default", func(t *testing.T) {
		t.Parallel()

		primary := jobpost.NewJob()
		secondary := jobpost.NewJob()
		secondary.JobType = "contract"

		merged := jobpost.Merge(primary, secondary)

		assert.Equal(t, "contract", merged.JobType)
	})

	t.Run("non-default primary job type stands", func(t *testing.T) {
		t.Parallel()

		primary := jobpost.NewJob()
		primary.JobType = "part-time"
		secondary := jobpost.NewJob()
		secondary.JobType = "contract"

		merged := jobpost.Merge(primary, secondary)

		assert.Equal(t, "part-time", merged.JobType)
	})

	t.Run("secondary salary fills zero salary only", func(t *testing.T) {
		t.Parallel()

		primary := jobpost.NewJob()
		secondary := jobpost.NewJob()
		secondary.Salary = jobpost.Salary{Min: 80000, Max: 120000, Currency: "INR"}

		merged := jobpost.Merge(primary, secondary)
		assert.Equal(t, secondary.Salary, merged.Salary)

		primary.Salary = jobpost.Salary{Min: 50000, Max: 70000, Currency: "USD"}
		merged = jobpost.Merge(primary, secondary)
		assert.Equal(t, primary.Salary, merged.Salary)
	})

	t.Run("substantially longer secondary description wins", func(t *testing.T) {
		t.Parallel()

		primary := jobpost.NewJob()
		primary.JobDescription = "Short blurb."
		secondary := jobpost.NewJob()
		secondary.JobDescription = "A much longer description with responsibilities and details."

		merged := jobpost.Merge(primary, secondary)

		assert.Equal(t, secondary.JobDescription, merged.JobDescription)
	})

	t.Run("marginally longer secondary description does not win", func(t *testing.T) {
		t.Parallel()

		primary := jobpost.NewJob()
		primary.JobDescription = "A reasonably detailed blurb."
		secondary := jobpost.NewJob()
		secondary.JobDescription = "A slightly longer blurb here."

		merged := jobpost.Merge(primary, secondary)

		assert.Equal(t, primary.JobDescription, merged.JobDescription)
	})

	t.Run("inputs are not mutated", func(t *testing.T) {
		t.Parallel()

		primary := jobpost.NewJob()
		secondary := jobpost.NewJob()
		secondary.Company = "Acme Inc"

		merged := jobpost.Merge(primary, secondary)

		assert.Equal(t, "Acme Inc", merged.Company)
		assert.Empty(t, primary.Company)
	})
}
