package pipeline

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/stocksense/stocksense/internal/llm"
	"github.com/stocksense/stocksense/internal/security"
	"github.com/stocksense/stocksense/internal/store"
)

// Executor runs one SQL statement and returns materialized rows.
type Executor interface {
	Execute(ctx context.Context, query string) (store.ResultSet, error)
}

// Answer is what the caller-facing surface renders: the conversational text
// plus the diagnostic artifacts behind it. Text is never empty; terminal
// errors are already rendered into it and echoed in Err for callers that
// report status.
type Answer struct {
	Text     string
	SQL      string
	Rows     store.ResultSet
	Degraded bool
	Err      error
}

// Pipeline sequences translate → guard → execute → format for one question.
// It is a stateless value: construct once at startup and share across
// requests. Sub-components are unaware of each other.
type Pipeline struct {
	schema     *SchemaDescriptor
	qguard     *security.QuestionGuard
	translator *Translator
	guard      *security.SQLGuard
	executor   Executor
	formatter  *Formatter
}

func New(gen llm.Generator, exec Executor, previewRows int) *Pipeline {
	return &Pipeline{
		schema:     NewSchemaDescriptor(),
		qguard:     security.NewQuestionGuard(),
		translator: NewTranslator(gen),
		guard:      security.NewSQLGuard(),
		executor:   exec,
		formatter:  NewFormatter(gen, previewRows),
	}
}

// Answer runs the full pipeline. A rejected question, translation failure,
// or guard rejection short-circuits before execution; execution errors skip
// the narration model call. Every path produces an Answer with non-empty
// text.
func (p *Pipeline) Answer(ctx context.Context, question string) Answer {
	if qerr := p.qguard.Check(question); qerr != nil {
		log.Warn().Err(qerr).Msg("question rejected")
		return Answer{Text: apology(qerr), Err: qerr}
	}

	query, err := p.translator.Translate(ctx, question, p.schema.Describe())
	if err != nil {
		log.Warn().Err(err).Msg("translation failed")
		return Answer{Text: apology(err), Err: err}
	}

	if gerr := p.guard.Check(query); gerr != nil {
		log.Warn().Err(gerr).Str("sql", query).Msg("generated SQL rejected")
		return Answer{Text: apology(gerr), SQL: query, Err: gerr}
	}

	rs, execErr := p.executor.Execute(ctx, query)
	if execErr != nil {
		log.Warn().Err(execErr).Str("sql", query).Msg("query execution failed")
	}

	res := p.formatter.Format(ctx, question, rs, execErr)
	return Answer{
		Text:     res.Text,
		SQL:      query,
		Rows:     rs,
		Degraded: res.Degraded,
		Err:      execErr,
	}
}
