// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package output writes resolved issues as NDJSON (Newline Delimited JSON),
// one issue object per line. The format streams well: consumers can process
// each line as it arrives, and large result sets never need to be held in
// memory as a single document.
//
// Example usage:
//
//	w := output.NewWriter(os.Stdout)
//	defer w.Close()
//
//	for _, issue := range issues {
//	    if err := w.Write(issue); err != nil {
//	        log.Printf("write failed: %v", err)
//	    }
//	}
package output
