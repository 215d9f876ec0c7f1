package recognize

import "errors"

type options struct {
	outputFilePath string
}

type Option func(*options) error

func WithOutputFilePath(outputFilePath string) Option {
	return func(o *options) error {
		if outputFilePath == "" {
			return errors.New("output file path must be 1 or more characters")
		}
		o.outputFilePath = outputFilePath
		return nil
	}
}
