// Package gemini implements jobpost.Enhancer using Google Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/jobpost"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is specified.
const DefaultModel = "gemini-3-flash-preview"

// maxDescriptionLength bounds the description included in the prompt.
const maxDescriptionLength = 4000

// Ensure Enhancer implements jobpost.Enhancer at compile time.
var _ jobpost.Enhancer = (*Enhancer)(nil)

// Enhancer augments extraction results with skills, a summary, highlights,
// and notes derived by Gemini from the job description.
type Enhancer struct {
	client *genai.Client
	model  string
}

// NewEnhancer creates a new Enhancer. An empty model means DefaultModel.
func NewEnhancer(client *genai.Client, model string) *Enhancer {
	if model == "" {
		model = DefaultModel
	}
	return &Enhancer{client: client, model: model}
}

// Enhance derives the enhancement fields from the job. The job itself is
// read-only input and is never modified.
func (e *Enhancer) Enhance(ctx context.Context, job *jobpost.Job) (*jobpost.Enhancement, error) {
	if job == nil || job.JobDescription == "" {
		return nil, jobpost.Errorf(jobpost.EINVALID, "job description required")
	}

	result, err := e.client.Models.GenerateContent(ctx, e.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(job)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, jobpost.Errorf(jobpost.EINTERNAL, "gemini returned nil result")
	}

	enhancement, err := ParseResponse(result.Text())
	if err != nil {
		return nil, err
	}
	return enhancement, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// Temperature is kept low for factual output.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.1)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are an AI assistant that specializes in analyzing job descriptions. " +
					"Extract the following information from the job description text:\n\n" +
					"1. skills: A list of required technical and soft skills (as an array of strings)\n" +
					"2. summary: A brief 2-3 sentence summary of the job\n" +
					"3. highlights: Top 3-5 most appealing aspects of this job (as an array of strings)\n" +
					"4. notes: Additional important details a job seeker should know\n\n" +
					"Format your response as JSON with these fields. Be concise and factual.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the job fields and the
// (bounded) description.
func BuildUserPrompt(job *jobpost.Job) string {
	description := job.JobDescription
	if len(description) > maxDescriptionLength {
		// Back up so the cut never splits a multi-byte rune.
		cut := maxDescriptionLength
		for cut > 0 && !utf8.RuneStart(description[cut]) {
			cut--
		}
		description = description[:cut]
	}

	var sb strings.Builder
	if job.Position != "" {
		fmt.Fprintf(&sb, "Position: %s\n", job.Position)
	}
	if job.Company != "" {
		fmt.Fprintf(&sb, "Company: %s\n", job.Company)
	}
	fmt.Fprintf(&sb, "\nJOB DESCRIPTION:\n'''\n%s\n'''", description)
	return sb.String()
}

var jsonFenceRe = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)\\s*```")

// ParseResponse extracts the Enhancement from a model response, handling
// fenced JSON blocks, and computes the quality score.
func ParseResponse(text string) (*jobpost.Enhancement, error) {
	raw := strings.TrimSpace(text)
	if m := jsonFenceRe.FindStringSubmatch(raw); m != nil {
		raw = m[1]
	}

	var enhancement jobpost.Enhancement
	if err := json.Unmarshal([]byte(raw), &enhancement); err != nil {
		return nil, jobpost.Errorf(jobpost.EINTERNAL, "failed to parse enhancement response: %v", err)
	}

	enhancement.QualityScore = Score(&enhancement)
	return &enhancement, nil
}

// Score rates an enhancement's completeness between 0 and 1. Weights favor
// skills, summary, and highlights; notes contribute the remainder.
func Score(e *jobpost.Enhancement) float64 {
	var score float64
	if len(e.Skills) > 0 {
		score += 0.3 * capped(float64(len(e.Skills))/5)
	}
	if len(e.Summary) > 10 {
		score += 0.3 * capped(float64(len(e.Summary))/100)
	}
	if len(e.Highlights) > 0 {
		score += 0.3 * capped(float64(len(e.Highlights))/3)
	}
	if len(e.Notes) > 0 {
		score += 0.1 * capped(float64(len(e.Notes))/50)
	}
	return score
}

func capped(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}
