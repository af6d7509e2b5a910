/*
Copyright (c) the dlt authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package dlt

import (
	"context"
	"errors"
	"io"

	"golang.org/x/sync/errgroup"
)

// ParseAll drives one Reader per buffer concurrently, invoking onMessage
// for every successfully decoded message and onError for every
// Recoverable error encountered and for the Fatal error, if any, that
// ends a Reader. A Fatal error stops only the Reader that hit it, unless
// onError returns an error for it. It returns once every buffer is
// exhausted, or the first
// time onMessage/onError returns an error, at which point ctx is
// canceled and the other Readers wind down. onMessage and onError are
// called from multiple goroutines and must be safe for concurrent use.
func ParseAll(ctx context.Context, buffers [][]byte, onMessage func(*Message) error, onError func(error) error) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, buf := range buffers {
		buf := buf
		g.Go(func() error {
			return parseOne(ctx, buf, onMessage, onError)
		})
	}
	return g.Wait()
}

func parseOne(ctx context.Context, buf []byte, onMessage func(*Message) error, onError func(error) error) error {
	r := NewReader(buf)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		msg, err := r.Next()
		switch {
		case err == nil:
			if cbErr := onMessage(msg); cbErr != nil {
				return cbErr
			}
		case errors.Is(err, io.EOF):
			return nil
		default:
			var fatal *FatalError
			if errors.As(err, &fatal) {
				if onError != nil {
					return onError(err)
				}
				return nil
			}
			if onError != nil {
				if cbErr := onError(err); cbErr != nil {
					return cbErr
				}
			}
		}
	}
}
