// Copyright 2026 go-numtheory Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package numtheory

import "errors"

// ErrInvalidArgument is the single failure kind of the module: an input
// outside an operation's domain, such as a negative bound or a root degree
// below one. Every package wraps it with context, so match with
//
//	errors.Is(err, numtheory.ErrInvalidArgument)
var ErrInvalidArgument = errors.New("invalid argument")
