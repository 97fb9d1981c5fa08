package formhandler

import (
	"errors"
	"io"
	"net/http"
	"skillmatch/internal/analyzer"
	"skillmatch/pkg/serrors"
)

const (
	// resumeField is the multipart field carrying the résumé file.
	resumeField = "resume"
	// jobDescriptionField is the form field carrying the job description.
	jobDescriptionField = "jobDescription"

	// multipartMemory is how much of a multipart body is kept in memory
	// before spilling file parts to disk.
	multipartMemory = 8 << 20
)

// parseUpload reads a multipart résumé upload from r.
func parseUpload(r *http.Request) (analyzer.Input, error) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return analyzer.Input{}, requestError(err, "could not parse upload")
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	in := analyzer.Input{JobDescription: r.FormValue(jobDescriptionField)}

	file, header, err := r.FormFile(resumeField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return analyzer.Input{}, serrors.With(serrors.ErrBadRequest, "Please choose a résumé file to upload.")
		}

		return analyzer.Input{}, requestError(err, "could not read résumé file")
	}
	defer func() { _ = file.Close() }()

	in.Filename = header.Filename
	in.Document, err = io.ReadAll(file)
	if err != nil {
		return analyzer.Input{}, requestError(err, "could not read résumé file")
	}

	return in, nil
}

func requestError(err error, msg string) error {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		return serrors.Wrap(serrors.ErrTooLarge, err, "upload exceeds %d bytes", mbe.Limit)
	}

	return serrors.Wrap(serrors.ErrBadRequest, err, "%s", msg)
}
