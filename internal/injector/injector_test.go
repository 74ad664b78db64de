// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package injector

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/go-fieldinject/internal/editor"
	"github.com/petar-djukic/go-fieldinject/internal/family"
	"github.com/petar-djukic/go-fieldinject/internal/render"
	"github.com/petar-djukic/go-fieldinject/pkg/types"
)

// recordingEvents implements types.Events for testing.
type recordingEvents struct {
	processed []string
	skipped   []string
	missed    []string // "anchor->closest"
	warnings  []string
	errors    []error
}

func (r *recordingEvents) FileProcessed(path string, _ types.Family, tier types.Tier) {
	r.processed = append(r.processed, filepath.Base(path)+":"+tier.String())
}

func (r *recordingEvents) FileSkipped(path string, _ types.Family, _ string) {
	r.skipped = append(r.skipped, filepath.Base(path))
}

func (r *recordingEvents) AnchorMissed(_ string, anchor, closest string) {
	r.missed = append(r.missed, anchor+"->"+closest)
}

func (r *recordingEvents) Warning(path string, _ error) {
	r.warnings = append(r.warnings, filepath.Base(path))
}

func (r *recordingEvents) Error(err error) {
	r.errors = append(r.errors, err)
}

// failingPersister fails for one file name and delegates the rest.
type failingPersister struct {
	failName string
	next     types.Persister
}

func (f *failingPersister) Persist(edit types.Edit) (*types.ApplyResult, error) {
	if filepath.Base(edit.FilePath) == f.failName {
		return nil, errors.New("disk full")
	}
	return f.next.Persist(edit)
}

func javaFile(class string) string {
	return "package com.acme.order;\n\npublic class " + class + " {\n  private Long id;\n}\n"
}

// setupProject writes files (relative path -> content) under a temp root.
func setupProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		full := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	return root
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func orderStatusSpec() types.FieldSpec {
	return types.FieldSpec{
		EntityName:    "Order",
		DBColumnName:  "STATUS",
		TypeName:      "Status",
		VariableName:  "status",
		Documentation: "Order status",
	}
}

func TestRun_EntityAndDto(t *testing.T) {
	root := setupProject(t, map[string]string{
		"entity/OrderEntity.java": javaFile("OrderEntity"),
		"dto/OrderDto.java":       javaFile("OrderDto"),
	})
	events := &recordingEvents{}
	inj := New(Deps{Events: events})

	result, err := inj.Run(context.Background(), root, orderStatusSpec(), family.CandidateNames("Order"))
	require.NoError(t, err)

	entityPath := filepath.Join(root, "entity/OrderEntity.java")
	dtoPath := filepath.Join(root, "dto/OrderDto.java")
	assert.True(t, result.Success())
	assert.ElementsMatch(t, []string{entityPath, dtoPath}, result.Modified)
	assert.Empty(t, result.Warnings)

	assert.Equal(t, `package com.acme.order;
import tw.com.softleader.jasmine.enums.Status;


public class OrderEntity {
  private Long id;

  /** Order status */
  @Column(name = "STATUS")
  @Enumerated(EnumType.STRING)
  private Status status;
}
`, readFile(t, entityPath))

	assert.Equal(t, `package com.acme.order;
import tw.com.softleader.jasmine.enums.Status;


public class OrderDto {
  private Long id;

  /** Order status */
  @Schema(description = "Order status")
  private Status status;
}
`, readFile(t, dtoPath))

	assert.ElementsMatch(t, []string{"OrderEntity.java:class_end", "OrderDto.java:class_end"}, events.processed)
}

func TestRun_PrimitiveTypeAddsNoImport(t *testing.T) {
	root := setupProject(t, map[string]string{
		"OrderEntity.java": javaFile("OrderEntity"),
		"OrderDto.java":    javaFile("OrderDto"),
	})
	spec := orderStatusSpec()
	spec.TypeName = "String"

	result, err := New(Deps{}).Run(context.Background(), root, spec, family.CandidateNames("Order"))
	require.NoError(t, err)
	require.Len(t, result.Modified, 2)

	entity := readFile(t, filepath.Join(root, "OrderEntity.java"))
	assert.NotContains(t, entity, "import ")
	assert.Contains(t, entity, "  @Column(name = \"STATUS\")\n  private String status;\n")
	assert.NotContains(t, entity, "@Enumerated")

	dto := readFile(t, filepath.Join(root, "OrderDto.java"))
	assert.NotContains(t, dto, "import ")
	assert.Contains(t, dto, "  @Schema(description = \"Order status\")\n  private String status;\n")
}

func TestRun_CriteriaWithoutDecorationUnchanged(t *testing.T) {
	original := javaFile("OrderCriteria")
	root := setupProject(t, map[string]string{
		"OrderCriteria.java":     original,
		"OrderQueryRequest.java": javaFile("OrderQueryRequest"),
	})
	events := &recordingEvents{}

	result, err := New(Deps{Events: events}).Run(context.Background(), root, orderStatusSpec(), family.CandidateNames("Order"))
	require.NoError(t, err)

	assert.False(t, result.Success())
	assert.Len(t, result.Skipped, 2)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, original, readFile(t, filepath.Join(root, "OrderCriteria.java")))
	assert.ElementsMatch(t, []string{"OrderCriteria.java", "OrderQueryRequest.java"}, events.skipped)
}

func TestRun_CriteriaWithDecoration(t *testing.T) {
	root := setupProject(t, map[string]string{
		"OrderCriteria.java":     javaFile("OrderCriteria"),
		"OrderQueryRequest.java": javaFile("OrderQueryRequest"),
	})
	spec := orderStatusSpec()
	spec.Decoration = `@Spec(value = Equal.class, path = "status")`

	result, err := New(Deps{}).Run(context.Background(), root, spec, family.CandidateNames("Order"))
	require.NoError(t, err)
	assert.Len(t, result.Modified, 2)

	assert.Contains(t, readFile(t, filepath.Join(root, "OrderCriteria.java")),
		"  /** Order status */\n  @Spec(value = Equal.class, path = \"status\")\n  private Status status;\n")
	query := readFile(t, filepath.Join(root, "OrderQueryRequest.java"))
	assert.Contains(t, query, "  /** Order status */\n  private Status status;\n")
	assert.NotContains(t, query, "@Spec")
}

func TestRun_AnchorPrecedence(t *testing.T) {
	content := "package a;\n\npublic class OrderVo {\n  private Long id;\n  private String name;\n  private List<Item> items;\n}\n"
	root := setupProject(t, map[string]string{"OrderVo.java": content})
	spec := orderStatusSpec()
	spec.Anchor = "name"
	events := &recordingEvents{}

	_, err := New(Deps{Events: events}).Run(context.Background(), root, spec, []string{"OrderVo.java"})
	require.NoError(t, err)

	assert.Equal(t, "package a;\nimport tw.com.softleader.jasmine.enums.Status;\n\n\npublic class OrderVo {\n"+
		"  private Long id;\n"+
		"  private String name;\n"+
		"\n"+
		"  /** Order status */\n"+
		"  private Status status;\n"+
		"  private List<Item> items;\n"+
		"}\n", readFile(t, filepath.Join(root, "OrderVo.java")))
	assert.Equal(t, []string{"OrderVo.java:anchor"}, events.processed)
	assert.Empty(t, events.missed)
}

func TestRun_MissingAnchorFallsBackAndReportsClosest(t *testing.T) {
	content := "package a;\n\npublic class OrderVo {\n  private Long orderId;\n  private List<Item> items;\n}\n"
	root := setupProject(t, map[string]string{"OrderVo.java": content})
	spec := orderStatusSpec()
	spec.TypeName = "Long"
	spec.Anchor = "orderID"
	events := &recordingEvents{}

	_, err := New(Deps{Events: events}).Run(context.Background(), root, spec, []string{"OrderVo.java"})
	require.NoError(t, err)

	assert.Equal(t, "package a;\n\npublic class OrderVo {\n"+
		"  private Long orderId;\n"+
		"  /** Order status */\n"+
		"  private Long status;\n"+
		"\n"+
		"  private List<Item> items;\n"+
		"}\n", readFile(t, filepath.Join(root, "OrderVo.java")))
	assert.Equal(t, []string{"OrderVo.java:collection"}, events.processed)
	assert.Equal(t, []string{"orderID->orderId"}, events.missed)
}

func TestRun_SecondRunDuplicatesField(t *testing.T) {
	root := setupProject(t, map[string]string{"OrderDto.java": javaFile("OrderDto")})
	inj := New(Deps{})
	names := family.CandidateNames("Order")

	_, err := inj.Run(context.Background(), root, orderStatusSpec(), names)
	require.NoError(t, err)
	_, err = inj.Run(context.Background(), root, orderStatusSpec(), names)
	require.NoError(t, err)

	got := readFile(t, filepath.Join(root, "OrderDto.java"))
	// Imports are deduplicated; field declarations are not.
	assert.Equal(t, 1, bytes.Count([]byte(got), []byte("import tw.com.softleader.jasmine.enums.Status;")))
	assert.Equal(t, 2, bytes.Count([]byte(got), []byte("private Status status;")))
}

func TestRun_PerFileFailureDoesNotStopBatch(t *testing.T) {
	root := setupProject(t, map[string]string{
		"OrderEntity.java": javaFile("OrderEntity"),
		"OrderDto.java":    javaFile("OrderDto"),
		"OrderVo.java":     "package a;\n// no class body\n",
	})
	events := &recordingEvents{}
	inj := New(Deps{
		Events:    events,
		Persister: &failingPersister{failName: "OrderEntity.java", next: &editor.FileWriter{}},
	})

	result, err := inj.Run(context.Background(), root, orderStatusSpec(), family.CandidateNames("Order"))
	require.NoError(t, err)

	assert.True(t, result.Success())
	assert.Equal(t, []string{filepath.Join(root, "OrderDto.java")}, result.Modified)
	require.Len(t, result.Warnings, 2)
	assert.Contains(t, result.Warnings[0], "disk full")
	assert.Contains(t, result.Warnings[1], ErrNoInsertionPoint.Error())
	assert.ElementsMatch(t, []string{"OrderEntity.java", "OrderVo.java"}, events.warnings)

	// Nothing is written for files that failed.
	assert.Equal(t, javaFile("OrderEntity"), readFile(t, filepath.Join(root, "OrderEntity.java")))
	assert.Equal(t, "package a;\n// no class body\n", readFile(t, filepath.Join(root, "OrderVo.java")))
}

func TestRun_InvalidRoot(t *testing.T) {
	events := &recordingEvents{}
	missing := filepath.Join(t.TempDir(), "absent")

	result, err := New(Deps{Events: events}).Run(context.Background(), missing, orderStatusSpec(), family.CandidateNames("Order"))
	assert.ErrorIs(t, err, ErrInvalidRoot)
	assert.False(t, result.Success())
	assert.Len(t, events.errors, 1)

	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	_, err = New(Deps{}).Run(context.Background(), file, orderStatusSpec(), nil)
	assert.ErrorIs(t, err, ErrInvalidRoot)
}

func TestRun_NoCandidatesFound(t *testing.T) {
	root := setupProject(t, map[string]string{"OtherDto.java": javaFile("OtherDto")})

	result, err := New(Deps{}).Run(context.Background(), root, orderStatusSpec(), family.CandidateNames("Order"))
	require.NoError(t, err)
	assert.False(t, result.Success())
	assert.Empty(t, result.Found)
	assert.Empty(t, result.Warnings)
}

func TestRun_DryRunLeavesFilesAndReturnsDiff(t *testing.T) {
	root := setupProject(t, map[string]string{"OrderDto.java": javaFile("OrderDto")})

	result, err := New(Deps{Persister: &editor.Previewer{}}).Run(context.Background(), root, orderStatusSpec(), family.CandidateNames("Order"))
	require.NoError(t, err)

	path := filepath.Join(root, "OrderDto.java")
	assert.Equal(t, []string{path}, result.Modified)
	assert.Equal(t, javaFile("OrderDto"), readFile(t, path))
	assert.Contains(t, result.Diffs[path], "+import tw.com.softleader.jasmine.enums.Status;")
	assert.Contains(t, result.Diffs[path], "+  private Status status;")
}

func TestRun_CustomIndentAndEnumPackage(t *testing.T) {
	root := setupProject(t, map[string]string{"OrderSaveCmd.java": javaFile("OrderSaveCmd")})

	inj := New(Deps{EnumPackage: "com.acme.enums", Renderer: render.New(4)})
	_, err := inj.Run(context.Background(), root, orderStatusSpec(), family.CandidateNames("Order"))
	require.NoError(t, err)

	got := readFile(t, filepath.Join(root, "OrderSaveCmd.java"))
	assert.Contains(t, got, "import com.acme.enums.Status;\n")
	assert.Contains(t, got, "\n    /** Order status */\n    private Status status;\n}")
}

func TestSlogEvents(t *testing.T) {
	var buf bytes.Buffer
	ev := &SlogEvents{Logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}

	ev.FileProcessed("/p/OrderDto.java", types.FamilyDto, types.TierAnchor)
	ev.FileSkipped("/p/OrderCriteria.java", types.FamilyCriteria, "no decoration")
	ev.AnchorMissed("/p/OrderVo.java", "nme", "name")
	ev.Warning("/p/OrderEntity.java", errors.New("boom"))
	ev.Error(errors.New("fatal"))

	out := buf.String()
	assert.Contains(t, out, "family=dto")
	assert.Contains(t, out, "tier=anchor")
	assert.Contains(t, out, "closest=name")
	assert.Contains(t, out, "error=boom")
	assert.Contains(t, out, "level=ERROR")
}

func TestRun_PreflightWarningsAreRecorded(t *testing.T) {
	root := setupProject(t, map[string]string{"OrderDto.java": javaFile("OrderDto")})
	var seen []string
	inj := New(Deps{Preflight: func(found []string) []string {
		seen = found
		return []string{"OrderDto.java has uncommitted changes"}
	}})

	result, err := inj.Run(context.Background(), root, orderStatusSpec(), family.CandidateNames("Order"))
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(root, "OrderDto.java")}, seen)
	assert.True(t, result.Success())
	assert.Equal(t, []string{"OrderDto.java has uncommitted changes"}, result.Warnings)
}

func TestRun_FindsFilesInBuildNamedPackages(t *testing.T) {
	root := setupProject(t, map[string]string{
		"src/main/java/com/acme/build/OrderDto.java":     javaFile("OrderDto"),
		"src/main/java/com/acme/target/OrderEntity.java": javaFile("OrderEntity"),
	})

	result, err := New(Deps{}).Run(context.Background(), root, orderStatusSpec(), family.CandidateNames("Order"))
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "src/main/java/com/acme/build/OrderDto.java"),
		filepath.Join(root, "src/main/java/com/acme/target/OrderEntity.java"),
	}, result.Modified)
}
