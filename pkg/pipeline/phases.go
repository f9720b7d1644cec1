package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/thoth-ai/thoth/pkg/agents"
	"github.com/thoth-ai/thoth/pkg/dbadapter"
	"github.com/thoth-ai/thoth/pkg/lsh"
	"github.com/thoth-ai/thoth/pkg/mschema"
)

// phaseValidate runs the question validator and, on language mismatch, the
// translator. Returns false when the run terminated.
func (r *run) phaseValidate(ctx context.Context) bool {
	if r.checkCancelled(ctx) {
		return false
	}
	s := r.state

	verdict, err := r.res.Agents.Validate(ctx, s.Question, r.res.Workspace.Language)
	if err != nil {
		r.critical(ctx, "question_validator", "Question validator unavailable: "+err.Error())
		return false
	}
	if !verdict.IsValid {
		r.critical(ctx, "question_validator", "Invalid question: "+verdict.Message)
		return false
	}

	lang := strings.ToLower(verdict.OriginalLanguage)
	if lang != "" && lang != strings.ToLower(r.res.Workspace.Language) {
		r.log("Translating question from %s to %s", verdict.OriginalLanguage, r.res.Workspace.Language)
		translated, err := r.res.Agents.Translate(ctx, s.Question, verdict.OriginalLanguage, r.res.Workspace.Language)
		if err != nil {
			r.warn("question_translator", "translation failed, continuing with the original question")
		} else {
			s.Semantic.OriginalQuestion = s.Question
			s.Semantic.OriginalLanguage = verdict.OriginalLanguage
			s.Question = translated
		}
	}
	return true
}

// phaseKeywords extracts the search keywords. Keywords are structurally
// required; a missing agent is a critical error.
func (r *run) phaseKeywords(ctx context.Context) bool {
	if r.checkCancelled(ctx) {
		return false
	}
	if !r.res.Agents.Has(agents.SlotKeywordSelector) {
		r.critical(ctx, "keyword_extraction", "No keyword extraction agent configured")
		return false
	}

	keywords, err := r.res.Agents.ExtractKeywords(ctx, r.state.Question, r.state.Semantic.Evidence)
	if err != nil {
		r.critical(ctx, "keyword_extraction", "Keyword extraction failed: "+err.Error())
		return false
	}
	r.state.Semantic.Keywords = keywords
	r.send(JSONFrame(TagKeywords, keywordsBody{Keywords: keywords, Count: len(keywords)}))
	return true
}

// phaseContext retrieves evidence and example shots (the vector manager is
// structurally required), runs the cell value lookup (critical), enriches the
// schema from the vector store (degraded on failure), and finalizes the
// schema variant used by the generators.
func (r *run) phaseContext(ctx context.Context) bool {
	if r.checkCancelled(ctx) {
		return false
	}
	s := r.state

	if r.res.Vector == nil {
		r.critical(ctx, "vector_store", "No vector database manager for this workspace")
		return false
	}

	searchKey := s.Question + " " + strings.Join(s.Semantic.Keywords, " ")
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hits, err := r.res.Vector.SearchEvidence(gctx, searchKey, evidenceTopK)
		if err != nil {
			return err
		}
		for _, h := range hits {
			s.Semantic.Evidence = append(s.Semantic.Evidence, h.Evidence)
		}
		return nil
	})
	g.Go(func() error {
		hits, err := r.res.Vector.SearchSQLPairs(gctx, s.Question, shotsTopK)
		if err != nil {
			return err
		}
		for _, h := range hits {
			s.Semantic.SQLShots = append(s.Semantic.SQLShots, agents.Shot{Question: h.Question, SQL: h.SQL})
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		r.warn("vector_store", "context retrieval degraded: "+err.Error())
	}

	if r.res.Index == nil || r.res.Index.Len() == 0 {
		r.critical(ctx, "lsh_extraction", "Failed to extract schema using LSH")
		return false
	}
	var matches []lsh.Match
	for _, kw := range s.Semantic.Keywords {
		matches = append(matches, r.res.Index.Query(kw, lshTopN, lshMinSim)...)
	}
	s.Semantic.SimilarColumns = matches

	working := cloneSchema(r.res.FullSchema)
	hit := mschema.AttachExamples(working, matches)
	s.Semantic.SchemaWithExamples = working

	examples := make(map[string][]string)
	var tables []string
	for table := range hit {
		tables = append(tables, table)
	}
	sort.Strings(tables)
	for _, m := range matches {
		key := m.Table + "." + m.Column
		examples[key] = append(examples[key], m.Value)
	}
	r.send(JSONFrame(TagSchemaContext, schemaContextBody{Tables: tables, Examples: examples}))

	similar := make([]string, 0, len(s.Semantic.SQLShots))
	for _, shot := range s.Semantic.SQLShots {
		similar = append(similar, shot.Question)
	}
	r.send(JSONFrame(TagSimilarQueries, similarQueriesBody{SimilarQueries: similar, Method: "LSH"}))

	hits, err := r.res.Vector.SearchColumns(ctx, strings.Join(s.Semantic.Keywords, " "), evidenceTopK)
	if err != nil {
		r.warn("schema_enrichment", "vector schema enrichment failed: "+err.Error())
	} else {
		mschema.MergeDescriptions(working, hits)
	}

	reduced := mschema.Reduce(working, hit)
	s.Semantic.FullMSchema = mschema.Render(working)
	s.Semantic.ReducedMSchema = mschema.Render(reduced)
	s.Semantic.Strategy = mschema.ChooseStrategy(reduced, working, len(s.Semantic.Keywords))
	if s.Semantic.Strategy == mschema.WithSchemaLink {
		r.usedSchema = reduced
		s.Semantic.UsedMSchema = s.Semantic.ReducedMSchema
	} else {
		r.usedSchema = working
		s.Semantic.UsedMSchema = s.Semantic.FullMSchema
	}
	return true
}

func cloneSchema(s *mschema.Schema) *mschema.Schema {
	if s == nil {
		return &mschema.Schema{}
	}
	out := &mschema.Schema{DBName: s.DBName, Dialect: s.Dialect}
	out.ForeignKeys = append(out.ForeignKeys, s.ForeignKeys...)
	for _, t := range s.Tables {
		nt := mschema.Table{Name: t.Name, Description: t.Description}
		nt.Columns = append(nt.Columns, t.Columns...)
		out.Tables = append(out.Tables, nt)
	}
	return out
}

// maxModelRetries bounds the corrected resubmissions per candidate after the
// engine rejects a generated statement.
const maxModelRetries = 2

// phaseGenerate fans out the SQL candidate generation with the method and
// temperature scheme. Every successful candidate is dry-run against the
// target database; a rejected statement goes back to the generator with a
// formatted correction block. Per-candidate failures are soft; the
// database-unavailable sentinel aggregates to a critical error after the
// fan-out drains.
func (r *run) phaseGenerate(ctx context.Context) bool {
	if r.checkCancelled(ctx) {
		return false
	}
	s := r.state
	level := s.Level()

	if !r.res.Agents.Has(agents.SQLSlotForLevel(level)) {
		r.critical(ctx, "sql_generation", fmt.Sprintf("No SQL agent configured for level %s", level))
		return false
	}
	s.Execution.AgentUsed = r.res.Agents.ModelFor(agents.SQLSlotForLevel(level))

	n := r.o.cfg.NumSQLCandidates
	r.log("Generating %d SQL candidates at level %s", n, level)

	seed := s.Request.StartedAt.UnixNano()
	results := make([]*agents.SQLCandidate, n)
	retries := make([][]string, n)

	var mu sync.Mutex
	var dbUnavailable error

	g, gctx := errgroup.WithContext(context.WithoutCancel(ctx))
	g.SetLimit(r.o.cfg.MaxParallelSQLs)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			method, temp := agents.PlanCandidate(i, n)
			in := &agents.SQLPromptInput{
				Question:        s.Question,
				Dialect:         r.res.Workspace.Dialect,
				MSchema:         mschema.RenderShuffled(r.usedSchema, seed, i),
				Directives:      s.Semantic.Directives,
				Evidence:        s.Semantic.Evidence,
				Shots:           s.Semantic.SQLShots,
				EscalationBlock: r.escalationBlock,
			}

			var history []string
			for attempt := 1; ; attempt++ {
				cctx, cancel := context.WithTimeout(gctx, r.o.cfg.CandidateTimeout)
				cand, err := r.res.Agents.GenerateSQL(cctx, level, in, method, temp)
				cancel()
				if err != nil {
					results[i] = &agents.SQLCandidate{Success: false, Method: method, Temperature: temp}
					return nil
				}
				if !cand.Success || cand.SQL == "" {
					results[i] = cand
					return nil
				}

				rc, vetErr := r.vetCandidate(gctx, cand.SQL, attempt, history)
				if vetErr != nil {
					mu.Lock()
					if dbUnavailable == nil {
						dbUnavailable = vetErr
					}
					mu.Unlock()
					results[i] = &agents.SQLCandidate{Success: false, Method: method, Temperature: temp}
					return nil
				}
				if rc == nil {
					results[i] = cand
					return nil
				}

				history = append(history, rc.HistoryLine())
				retries[i] = history
				if attempt > maxModelRetries {
					cand.Success = false
					results[i] = cand
					return nil
				}
				in.RetryBlock = rc.Format()
			}
		})
	}
	_ = g.Wait()

	if r.checkCancelled(ctx) {
		return false
	}
	if dbUnavailable != nil {
		r.critical(ctx, "sql_generation", "Target database unavailable: "+dbUnavailable.Error())
		return false
	}

	resubmitted := 0
	for _, h := range retries {
		if len(h) > 0 {
			resubmitted++
		}
		s.Generation.RetryEvents = append(s.Generation.RetryEvents, h...)
	}
	if resubmitted > 0 {
		r.log("Resubmitted %d candidates after engine rejection", resubmitted)
	}

	collected := make([]agents.SQLCandidate, 0, n)
	for _, c := range results {
		if c != nil {
			collected = append(collected, *c)
		}
	}
	s.Generation.Candidates = DedupCandidates(collected)
	r.send(JSONFrame(TagSQLCandidates, sqlCandidatesBody{
		Count: len(s.Generation.Candidates),
		SQLs:  candidateSQLs(s.Generation.Candidates),
	}))
	return true
}

// vetCandidate dry-runs one generated statement against the target database
// with a single-row page. A clean run returns (nil, nil); a rejected
// statement returns the retry context for a corrected resubmission; an
// unreachable database returns the sentinel for post-fan-out aggregation.
func (r *run) vetCandidate(ctx context.Context, sqlText string, attempt int, history []string) (*agents.RetryContext, error) {
	if r.res.DB == nil {
		return nil, nil
	}
	vctx, cancel := context.WithTimeout(ctx, r.o.cfg.CandidateTimeout)
	defer cancel()

	page, err := r.res.DB.ExecutePaginated(vctx, sqlText, 1, 1, nil, nil)
	if err == nil && (page == nil || page.Error == "") {
		return nil, nil
	}
	if errors.Is(err, dbadapter.ErrDatabaseUnavailable) {
		return nil, err
	}
	var issue string
	if err != nil {
		issue = err.Error()
	} else if page != nil {
		issue = page.Error
	}
	return &agents.RetryContext{
		Category:         retryCategoryFor(issue),
		Attempt:          attempt,
		Database:         r.res.Workspace.DBName,
		SQL:              sqlText,
		Issue:            issue,
		PreviousAttempts: history,
	}, nil
}

// retryCategoryFor maps an engine rejection message to the category the
// corrected resubmission is tagged with.
func retryCategoryFor(issue string) agents.RetryCategory {
	msg := strings.ToLower(issue)
	switch {
	case strings.Contains(msg, "syntax"):
		return agents.RetrySyntaxError
	case strings.Contains(msg, "no such table"), strings.Contains(msg, "no such column"),
		strings.Contains(msg, "unknown column"), strings.Contains(msg, "does not exist"),
		strings.Contains(msg, "invalid object name"), strings.Contains(msg, "invalid identifier"):
		return agents.RetrySchemaError
	default:
		return agents.RetryExecutionError
	}
}

// phaseEvaluate generates tests, optionally reduces them, and evaluates every
// candidate against the surviving test list.
func (r *run) phaseEvaluate(ctx context.Context) bool {
	if r.checkCancelled(ctx) {
		return false
	}
	s := r.state

	if !r.res.Agents.Has(agents.SlotTestExecutor) {
		r.critical(ctx, "test_evaluation", "No test executor agent configured")
		return false
	}

	genSlots := []agents.Slot{}
	for _, slot := range []agents.Slot{agents.SlotTestGen1, agents.SlotTestGen2} {
		if r.res.Agents.Has(slot) {
			genSlots = append(genSlots, slot)
		}
	}
	if len(genSlots) == 0 {
		r.critical(ctx, "test_generation", "No test generator agent configured")
		return false
	}

	in := &agents.TestPromptInput{
		Question: s.Question,
		Dialect:  r.res.Workspace.Dialect,
		MSchema:  s.Semantic.UsedMSchema,
		Evidence: s.Semantic.Evidence,
	}
	sets := make([]agents.TestSet, len(genSlots))
	g, gctx := errgroup.WithContext(context.WithoutCancel(ctx))
	g.SetLimit(r.o.cfg.MaxParallelTests)
	for gi, slot := range genSlots {
		g.Go(func() error {
			set, err := r.res.Agents.GenerateTests(gctx, slot, in)
			if err != nil {
				r.o.logger.Warn("test generator failed", "slot", slot, "error", err)
				return nil
			}
			sets[gi] = *set
			return nil
		})
	}
	_ = g.Wait()

	if r.checkCancelled(ctx) {
		return false
	}

	s.Generation.Tests = DedupTests(sets)
	if len(s.Generation.Tests) == 0 {
		r.critical(ctx, "test_generation", "All test generators failed")
		return false
	}

	s.Generation.FilteredTests = s.Generation.Tests
	if len(genSlots) > 1 && len(s.Generation.Tests) > r.o.cfg.TestReducerMinUnique {
		s.Generation.FilteredTests = r.res.Agents.ReduceTests(ctx, s.Generation.Tests)
	}
	r.send(JSONFrame(TagTestsGenerated, testsGeneratedBody{TestCount: len(s.Generation.FilteredTests)}))

	candidates := s.Generation.Candidates
	s.Generation.Evaluations = make([]agents.EvaluationSet, len(candidates))
	eg, ectx := errgroup.WithContext(context.WithoutCancel(ctx))
	eg.SetLimit(r.o.cfg.MaxParallelSQLs)
	for i := range candidates {
		eg.Go(func() error {
			set, err := r.res.Agents.Evaluate(ectx, s.Question, s.Semantic.UsedMSchema,
				candidates[i].SQL, s.Generation.FilteredTests)
			if err != nil {
				// Soft failure: the candidate scores zero.
				ko := make([]string, len(s.Generation.FilteredTests))
				for k := range ko {
					ko[k] = "KO - evaluation unavailable"
				}
				s.Generation.Evaluations[i] = agents.EvaluationSet{Answers: ko}
				return nil
			}
			s.Generation.Evaluations[i] = *set
			return nil
		})
	}
	_ = eg.Wait()

	if r.checkCancelled(ctx) {
		return false
	}

	s.Execution.PassRates = make([]float64, len(candidates))
	s.Generation.Verdicts = make([]string, len(candidates))
	for i := range candidates {
		s.Execution.PassRates[i] = PassRate(&s.Generation.Evaluations[i], len(s.Generation.FilteredTests))
		s.Generation.Verdicts[i] = VerdictLine(i, &s.Generation.Evaluations[i])
	}
	r.send(JSONFrame(TagEvaluationDone, evaluationCompleteBody{Evaluated: true}))
	return true
}

// finalize corrects, formats, and emits the selected SQL, optionally runs the
// explainer, and writes the run record.
func (r *run) finalize(ctx context.Context) {
	s := r.state
	selected := s.Generation.Candidates[s.Execution.SelectedIndex]

	corrected := CorrectDelimiters(selected.SQL, r.res.Workspace.Dialect)
	formatted := FormatSQL(corrected)
	s.Generation.LastSQL = formatted

	if s.Execution.SelectedPassRate == 1.0 {
		s.Execution.SQLStatus = StatusGold
	} else {
		s.Execution.SQLStatus = StatusSilver
	}

	r.send(JSONFrame(TagSQLFormatted, sqlFormattedBody{SQL: formatted}))
	r.send(JSONFrame(TagSQLReady, sqlReadyBody{
		SQL:            formatted,
		WorkspaceID:    s.Request.WorkspaceID,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		Username:       s.Request.Username,
		Agent:          s.Execution.AgentUsed,
		SQLStatus:      string(s.Execution.SQLStatus),
		EvaluationCase: string(s.Execution.EvaluationCase),
		PassRate:       s.Execution.SelectedPassRate,
		IsSilver:       s.Execution.SQLStatus == StatusSilver,
		IsGold:         s.Execution.SQLStatus == StatusGold,
	}))

	if s.Request.Flags.ExplainGeneratedQuery && r.res.Agents.Has(agents.SlotSQLExplainer) {
		explanation, err := r.res.Agents.Explain(ctx, &agents.ExplainInput{
			Question:       s.Question,
			SQL:            formatted,
			DatabaseSchema: s.Semantic.UsedMSchema,
			Evidence:       strings.Join(s.Semantic.Evidence, "\n"),
			ChainOfThought: selected.Thinking,
			Language:       r.res.Workspace.Language,
		})
		if err != nil {
			r.warn("sql_explainer", "explanation unavailable: "+err.Error())
		} else {
			s.Generation.Explanation = explanation
			r.send(JSONFrame(TagSQLExplanation, sqlExplanationBody{
				Explanation: explanation,
				Language:    r.res.Workspace.Language,
			}))
		}
	}

	r.writeRecord(ctx, formatted)
}
