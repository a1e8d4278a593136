/*
   Copyright 2025 The DIRPX Authors.

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

package typescript_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/enumx"
	"dirpx.dev/enumx/internal/typescript"
)

func statuses(t *testing.T, values ...string) *enumx.Type {
	t.Helper()
	opts := make([]enumx.Option, 0, len(values))
	for _, v := range values {
		opts = append(opts, enumx.WithValue(v, v+"'s"))
	}
	typ, err := enumx.New("app.billing.Status", enumx.String, opts...)
	require.NoError(t, err)
	return typ
}

func TestTransform(t *testing.T) {
	numbers, err := enumx.New("app.Numbers", enumx.Int, enumx.WithValue("one", 1), enumx.WithValue("two", 2))
	require.NoError(t, err)
	assert.Equal(t, "export enum Numbers {\n    one = 1,\n    two = 2,\n}\n", typescript.Transform(numbers))

	suit, err := enumx.New("app.Suit", enumx.Pure, enumx.WithCase("Hearts"))
	require.NoError(t, err)
	assert.Equal(t, "export enum Suit {\n    Hearts,\n}\n", typescript.Transform(suit))

	assert.Equal(t, "export enum Status {\n    Paid = 'Paid\\'s',\n}\n", typescript.Transform(statuses(t, "Paid")))
}

func TestSync_Lifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ts", "enums.ts")
	s := typescript.New()
	ctx := context.Background()

	out, err := s.Sync(ctx, statuses(t, "Paid"), path, false)
	require.NoError(t, err)
	assert.Equal(t, typescript.Created, out)

	suit, err := enumx.New("app.Suit", enumx.Pure, enumx.WithCase("Hearts"))
	require.NoError(t, err)
	out, err = s.Sync(ctx, suit, path, false)
	require.NoError(t, err)
	assert.Equal(t, typescript.Appended, out)

	out, err = s.Sync(ctx, statuses(t, "Paid", "Due"), path, false)
	require.NoError(t, err)
	assert.Equal(t, typescript.Unchanged, out)

	out, err = s.Sync(ctx, statuses(t, "Paid", "Due"), path, true)
	require.NoError(t, err)
	assert.Equal(t, typescript.Replaced, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"export enum Status {\n    Paid = 'Paid\\'s',\n    Due = 'Due\\'s',\n}\n"+
			"\n"+
			"export enum Suit {\n    Hearts,\n}\n",
		string(data))
}

func TestSync_DoesNotMatchPrefixedNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enums.ts")
	require.NoError(t, os.WriteFile(path, []byte("export enum StatusCode {\n    Ok = 200,\n}"), 0o644))

	out, err := typescript.New().Sync(context.Background(), statuses(t, "Paid"), path, false)
	require.NoError(t, err)
	assert.Equal(t, typescript.Appended, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "export enum StatusCode {\n    Ok = 200,\n}\n\nexport enum Status {\n    Paid = 'Paid\\'s',\n}\n", string(data))
}

func TestSync_ForceReplacesBlockWithBracesInValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enums.ts")
	s := typescript.New()
	ctx := context.Background()

	braces, err := enumx.New("app.Template", enumx.String,
		enumx.WithValue("Open", "{"),
		enumx.WithValue("Close", "}"),
		enumx.WithValue("Quoted", "it's }"),
	)
	require.NoError(t, err)
	_, err = s.Sync(ctx, braces, path, false)
	require.NoError(t, err)
	_, err = s.Sync(ctx, statuses(t, "Paid"), path, false)
	require.NoError(t, err)

	plain, err := enumx.New("app.Template", enumx.String, enumx.WithValue("Body", "body"))
	require.NoError(t, err)
	out, err := s.Sync(ctx, plain, path, true)
	require.NoError(t, err)
	assert.Equal(t, typescript.Replaced, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"export enum Template {\n    Body = 'body',\n}\n"+
			"\n"+
			"export enum Status {\n    Paid = 'Paid\\'s',\n}\n",
		string(data))
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "created", typescript.Created.String())
	assert.Equal(t, "Unknown(9)", typescript.Outcome(9).String())
}
