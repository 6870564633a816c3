package hcl

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/modfuncs/internal/ctxlog"
	"github.com/specialistvlad/modfuncs/internal/exprscan"
	"github.com/specialistvlad/modfuncs/internal/fsutil"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// DocumentExtension is the extension searched for when a directory is evaluated.
const DocumentExtension = ".hcl"

// Evaluator evaluates expressions and documents with a fixed set of
// functions and variables.
type Evaluator struct {
	fs        afero.Fs
	functions map[string]function.Function
	variables map[string]cty.Value
}

// NewEvaluator creates an Evaluator that reads documents from fs.
func NewEvaluator(fs afero.Fs, functions map[string]function.Function, variables map[string]cty.Value) *Evaluator {
	return &Evaluator{
		fs:        fs,
		functions: functions,
		variables: variables,
	}
}

// EvalContext returns a fresh evaluation context for the evaluator's
// functions and variables.
func (e *Evaluator) EvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: e.functions,
		Variables: e.variables,
	}
}

// EvalExpression parses and evaluates a single native-syntax expression.
func (e *Evaluator) EvalExpression(ctx context.Context, src string) (cty.Value, error) {
	logger := ctxlog.FromContext(ctx)

	expr, diags := hclsyntax.ParseExpression([]byte(src), "<expression>", hcl.InitialPos)
	if err := diagsError(diags); err != nil {
		return cty.NilVal, err
	}

	scan := exprscan.NewContainer()
	scan.Add(expr)
	logger.Debug("Evaluating expression.", "expression", src, "functions", scan.CalledFunctions())

	val, diags := expr.Value(e.EvalContext())
	if err := diagsError(diags); err != nil {
		return cty.NilVal, err
	}
	return val, nil
}

// Parse reads and parses a document without evaluating it. Files ending in
// ".json" are parsed as HCL JSON, everything else as native syntax.
func (e *Evaluator) Parse(ctx context.Context, path string) (*Document, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing document.", "path", path)

	src, err := afero.ReadFile(e.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	var file *hcl.File
	var diags hcl.Diagnostics
	if strings.EqualFold(filepath.Ext(path), ".json") {
		file, diags = parser.ParseJSON(src, path)
	} else {
		file, diags = parser.ParseHCL(src, path)
	}
	if err := diagsError(diags); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	attrs, diags := file.Body.JustAttributes()
	if err := diagsError(diags); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	doc := &Document{
		Path:        path,
		Expressions: make(map[string]hcl.Expression, len(attrs)),
		Scan:        exprscan.NewContainer(),
	}
	for name, attr := range attrs {
		doc.Names = append(doc.Names, name)
		doc.Expressions[name] = attr.Expr
		doc.Scan.Add(attr.Expr)
	}
	sort.Strings(doc.Names)

	logger.Debug("Parsed document.", "path", path, "attributes", len(doc.Names), "functions", doc.Scan.CalledFunctions())
	return doc, nil
}

// EvalFile parses a document and evaluates every attribute in name order.
func (e *Evaluator) EvalFile(ctx context.Context, path string) (*Document, error) {
	doc, err := e.Parse(ctx, path)
	if err != nil {
		return nil, err
	}

	evalCtx := e.EvalContext()
	doc.Values = make(map[string]cty.Value, len(doc.Names))
	for _, name := range doc.Names {
		val, diags := doc.Expressions[name].Value(evalCtx)
		if err := diagsError(diags); err != nil {
			return nil, fmt.Errorf("failed to evaluate %q in %s: %w", name, path, err)
		}
		doc.Values[name] = val
	}

	ctxlog.FromContext(ctx).Debug("Evaluated document.", "path", path, "attributes", len(doc.Names))
	return doc, nil
}

// ParsePath parses the document at path, or every document below it when
// path is a directory.
func (e *Evaluator) ParsePath(ctx context.Context, path string) ([]*Document, error) {
	return e.eachDocument(ctx, path, e.Parse)
}

// EvalPath evaluates the document at path, or every document below it when
// path is a directory.
func (e *Evaluator) EvalPath(ctx context.Context, path string) ([]*Document, error) {
	return e.eachDocument(ctx, path, e.EvalFile)
}

func (e *Evaluator) eachDocument(ctx context.Context, path string, fn func(context.Context, string) (*Document, error)) ([]*Document, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.ResolveFiles(e.fs, path, DocumentExtension)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		logger.Warn("No documents found in path.", "path", path, "extension", DocumentExtension)
		return nil, nil
	}

	docs := make([]*Document, 0, len(files))
	for _, file := range files {
		doc, err := fn(ctx, file)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
