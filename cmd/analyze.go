package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"skillmatch/internal/analyzer"
	"skillmatch/pkg/domain"
	"skillmatch/pkg/serrors"
	"strings"

	"github.com/go-faster/jx"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type analyzeFlags struct {
	resumes     []string
	job         string
	jobFile     string
	json        bool
	concurrency int
}

// fileResult is the outcome for one résumé of a batch.
type fileResult struct {
	file     string
	analysis *domain.Analysis
	err      error
}

func analyzeCommand() *cobra.Command {
	var flags analyzeFlags

	cmd := &cobra.Command{
		Use:   "analyze --resume FILE... (--job TEXT | --job-file FILE)",
		Short: "Analyzes one or more résumés against a job description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			job := flags.job
			if flags.jobFile != "" {
				data, err := os.ReadFile(flags.jobFile)
				if err != nil {
					return fmt.Errorf("could not read job description: %w", err)
				}
				job = string(data)
			}

			an, err := newAnalyzer()
			if err != nil {
				return err
			}

			results, err := analyzeFiles(cmd, an, flags.resumes, job, flags.concurrency)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if flags.json {
				err = writeResultsJSON(out, results)
			} else {
				err = writeResultsText(out, results)
			}
			if err != nil {
				return err
			}

			if n := countFailed(results); n > 0 {
				return fmt.Errorf("%d of %d résumés could not be analyzed", n, len(results))
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&flags.resumes, "resume", "r", nil, "Résumé file (PDF, DOCX, HTML or text), repeatable")
	cmd.Flags().StringVarP(&flags.job, "job", "j", "", "Job description text")
	cmd.Flags().StringVar(&flags.jobFile, "job-file", "", "File containing the job description")
	cmd.Flags().BoolVar(&flags.json, "json", false, "Print results as JSON")
	cmd.Flags().IntVar(&flags.concurrency, "concurrency", runtime.NumCPU(), "Maximum résumés analyzed at once")
	_ = cmd.MarkFlagRequired("resume")
	cmd.MarkFlagsOneRequired("job", "job-file")
	cmd.MarkFlagsMutuallyExclusive("job", "job-file")

	return cmd
}

// analyzeFiles runs one analysis per file with at most limit running at once.
// Files that cannot be read abort the batch; analysis errors are kept per file.
func analyzeFiles(cmd *cobra.Command, an analyzer.Analyzer, files []string, job string, limit int) ([]fileResult, error) {
	results := make([]fileResult, len(files))

	g, ctx := errgroup.WithContext(cmd.Context())
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, file := range files {
		g.Go(func() error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("could not read résumé: %w", err)
			}

			res, err := an.Analyze(ctx, analyzer.Input{
				Document:       data,
				Filename:       filepath.Base(file),
				JobDescription: job,
			})
			results[i] = fileResult{file: file, analysis: res, err: err}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func countFailed(results []fileResult) int {
	n := 0
	for _, r := range results {
		if r.err != nil {
			n++
		}
	}

	return n
}

func writeResultsText(w io.Writer, results []fileResult) error {
	var b strings.Builder
	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(&b, "%s: error: %s\n", r.file, serrors.UserMessage(r.err))

			continue
		}

		a := r.analysis
		fmt.Fprintf(&b, "%s: %.2f%%\n", r.file, a.Score)
		fmt.Fprintf(&b, "  matched:       %s\n", joinSkills(a.Matched))
		fmt.Fprintf(&b, "  missing:       %s\n", joinSkills(a.Missing))
		fmt.Fprintf(&b, "  resume skills: %s\n", joinSkills(a.ResumeSkills))
		if a.JobFallbackUsed {
			fmt.Fprintln(&b, "  note: job skills found by substring scan")
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func joinSkills(skills []domain.Skill) string {
	if len(skills) == 0 {
		return "-"
	}

	return strings.Join(skills, ", ")
}

func writeResultsJSON(w io.Writer, results []fileResult) error {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ArrStart()
	for _, r := range results {
		e.ObjStart()
		e.FieldStart("file")
		e.Str(r.file)
		if r.err != nil {
			e.FieldStart("error")
			e.ObjStart()
			e.FieldStart("kind")
			e.Str(serrors.KindOf(r.err).Error())
			e.FieldStart("message")
			e.Str(serrors.UserMessage(r.err))
			e.ObjEnd()
		} else {
			e.FieldStart("analysis")
			r.analysis.Encode(e)
		}
		e.ObjEnd()
	}
	e.ArrEnd()
	e.RawStr("\n")

	_, err := w.Write(e.Bytes())

	return err
}
