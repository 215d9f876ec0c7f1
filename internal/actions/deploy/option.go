package deploy

import (
	"errors"
	"time"
)

type options struct {
	runtime          string
	entryPoint       string
	sourceArchiveURL string
	triggerTopic     string
	timeout          time.Duration
}

type Option func(*options) error

func WithRuntime(runtime string) Option {
	return func(o *options) error {
		if runtime == "" {
			return errors.New("runtime must be 1 or more characters")
		}
		o.runtime = runtime
		return nil
	}
}

func WithEntryPoint(entryPoint string) Option {
	return func(o *options) error {
		if entryPoint == "" {
			return errors.New("entry point must be 1 or more characters")
		}
		o.entryPoint = entryPoint
		return nil
	}
}

func WithSourceArchiveURL(sourceArchiveURL string) Option {
	return func(o *options) error {
		if sourceArchiveURL == "" {
			return errors.New("source archive URL must be 1 or more characters")
		}
		o.sourceArchiveURL = sourceArchiveURL
		return nil
	}
}

func WithTriggerTopic(triggerTopic string) Option {
	return func(o *options) error {
		if triggerTopic == "" {
			return errors.New("trigger topic must be 1 or more characters")
		}
		o.triggerTopic = triggerTopic
		return nil
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(o *options) error {
		if timeout <= 0 {
			return errors.New("timeout must be greater than zero")
		}
		o.timeout = timeout
		return nil
	}
}
