// Copyright 2025 walteh LLC
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

package config

import (
	"context"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses the config from HCL. Replace patterns are repeated blocks:
//
//	replacePattern {
//	  pattern     = "t"
//	  replacement = "$${quote}$${text}$${quote}"
//	}
//
// HCL treats "${" as an interpolation, so template placeholders are written
// with a doubled dollar sign.
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "i18n-cleaner.config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	// Define HCL schema
	type hclConfig struct {
		Include            []string `hcl:"include,optional"`
		Exclude            []string `hcl:"exclude,optional"`
		RemoveImports      []string `hcl:"removeImports,optional"`
		RemoveDeclarations []string `hcl:"removeDeclarations,optional"`
		Backup             *bool    `hcl:"backup,optional"`
		ArgumentMode       *string  `hcl:"argumentMode,optional"`
		Encoding           *string  `hcl:"encoding,optional"`
		Concurrency        *int     `hcl:"concurrency,optional"`
		ReplacePatterns    []struct {
			Pattern     string  `hcl:"pattern"`
			Replacement *string `hcl:"replacement,optional"`
		} `hcl:"replacePattern,block"`
	}

	// Decode HCL
	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	file := &File{
		Include:            hclCfg.Include,
		Exclude:            hclCfg.Exclude,
		RemoveImports:      hclCfg.RemoveImports,
		RemoveDeclarations: hclCfg.RemoveDeclarations,
		Backup:             hclCfg.Backup,
		ArgumentMode:       hclCfg.ArgumentMode,
		Encoding:           hclCfg.Encoding,
		Concurrency:        hclCfg.Concurrency,
	}

	for _, r := range hclCfg.ReplacePatterns {
		file.ReplacePatterns = append(file.ReplacePatterns, FilePattern{
			Pattern:     r.Pattern,
			Replacement: r.Replacement,
		})
	}

	return file, nil
}
