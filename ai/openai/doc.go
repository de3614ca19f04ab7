// Copyright 2025 The Task Chat Authors
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


// Package openai provides AI service implementations using OpenAI-compatible APIs.
//
// This package implements the ai.AIProvider interface using the langchaingo
// library to communicate with OpenAI or OpenAI-compatible services (such as
// Ollama, LocalAI, or vLLM).
//
// # Usage
//
//	config := ai.DefaultConfig()
//	// Or customize:
//	config := ai.NewConfig(
//	    ai.WithHost("http://localhost:11434"),  // /v1 added automatically
//	    ai.WithParserModel("qwen2.5:3b"),
//	    ai.WithLanguages("en", "zh"),
//	)
//
//	provider, err := openai.NewProvider(config, vocab.Default())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	// Use the services
//	result, err := provider.QueryParser().ParseQuery(ctx, "p1 fix bug")
//	rec, err := provider.Recommender().Recommend(ctx, req, nil)
//
// Query parsing uses JSON mode with temperature 0 and retries malformed
// output up to three times, repairing the most common JSON defects small
// models produce. Recommendations stream when a callback is supplied.
package openai
