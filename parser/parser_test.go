package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *Program {
	t.Helper()
	p, err := NewParser(src)
	require.NoError(t, err)
	prog, err := p.Parse()
	require.NoError(t, err)
	return prog
}

func TestParse_VarDecl(t *testing.T) {
	prog := mustParse(t, `num a = 1 + 2;`)
	require.Len(t, prog.Statements, 1)
	decl, ok := prog.Statements[0].(*VarDeclStmt)
	require.True(t, ok)
	assert.Equal(t, "num", decl.TypeName)
	assert.Equal(t, "a", decl.Name)
	bin, ok := decl.Init.(*Binary)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Op)
}

func TestParse_ExprStmtVsVarDecl(t *testing.T) {
	// "a = 1;" is a plain assignment expression statement, not a decl,
	// because the leading identifier is not a known type name.
	prog := mustParse(t, `a = 1;`)
	require.Len(t, prog.Statements, 1)
	es, ok := prog.Statements[0].(*ExprStmt)
	require.True(t, ok)
	_, ok = es.X.(*Assign)
	assert.True(t, ok)
}

func TestParse_UserTypeVarDecl(t *testing.T) {
	prog := mustParse(t, `
newtype Point:
	num x;
	num y;
end;
Point p = {1, 2};
`)
	require.Len(t, prog.Statements, 2)
	decl, ok := prog.Statements[1].(*VarDeclStmt)
	require.True(t, ok)
	assert.Equal(t, "Point", decl.TypeName)
	_, ok = decl.Init.(*RecordLit)
	assert.True(t, ok)
}

func TestParse_IfElifElse(t *testing.T) {
	prog := mustParse(t, `
if (a > 1):
	b = 1;
elif (a > 0):
	b = 2;
else:
	b = 3;
end;
`)
	require.Len(t, prog.Statements, 1)
	ifs, ok := prog.Statements[0].(*IfStmt)
	require.True(t, ok)
	require.Len(t, ifs.Elifs, 1)
	require.Len(t, ifs.Then, 1)
	require.Len(t, ifs.Else, 1)
}

func TestParse_WhileAndControlFlow(t *testing.T) {
	prog := mustParse(t, `
while (i < 10):
	if (i == 5):
		break;
	end;
	continue;
end;
`)
	ws, ok := prog.Statements[0].(*WhileStmt)
	require.True(t, ok)
	require.Len(t, ws.Body, 2)
	_, ok = ws.Body[1].(*ContinueStmt)
	assert.True(t, ok)
}

func TestParse_FuncDeclAndCall(t *testing.T) {
	prog := mustParse(t, `
func add(num a, num b):
	return a + b;
end;
num c = add(1, 2);
`)
	require.Len(t, prog.Statements, 2)
	fd, ok := prog.Statements[0].(*FuncDeclStmt)
	require.True(t, ok)
	assert.Equal(t, "add", fd.Name)
	require.Len(t, fd.Params, 2)

	decl := prog.Statements[1].(*VarDeclStmt)
	call, ok := decl.Init.(*FuncCall)
	require.True(t, ok)
	require.Len(t, call.Args, 2)
}

func TestParse_AlwaysBlock(t *testing.T) {
	prog := mustParse(t, `
always(5):
	output("tick");
end;
`)
	as, ok := prog.Statements[0].(*AlwaysStmt)
	require.True(t, ok)
	require.Len(t, as.Body, 1)
}

func TestParse_NewTypeWithMethod(t *testing.T) {
	prog := mustParse(t, `
newtype Counter:
	num n;
	func bump():
		n = n + 1;
	end;
end;
`)
	nt, ok := prog.Statements[0].(*NewTypeStmt)
	require.True(t, ok)
	require.Len(t, nt.Fields, 1)
	require.Len(t, nt.Methods, 1)
	assert.Equal(t, "bump", nt.Methods[0].Name)
}

func TestParse_PostfixChain(t *testing.T) {
	prog := mustParse(t, `x = a.b.c(1)[0];`)
	es := prog.Statements[0].(*ExprStmt)
	assign := es.X.(*Assign)
	idx, ok := assign.Value.(*Index)
	require.True(t, ok)
	call, ok := idx.Object.(*MemberCall)
	require.True(t, ok)
	assert.Equal(t, "c", call.Name)
	_, ok = call.Object.(*MemberAccess)
	assert.True(t, ok)
}

func TestParse_UnaryPrecedence(t *testing.T) {
	prog := mustParse(t, `x = not a and not b;`)
	es := prog.Statements[0].(*ExprStmt)
	assign := es.X.(*Assign)
	bin, ok := assign.Value.(*Binary)
	require.True(t, ok)
	assert.Equal(t, "and", bin.Op)
	_, ok = bin.Left.(*Unary)
	assert.True(t, ok)
	_, ok = bin.Right.(*Unary)
	assert.True(t, ok)
}

func TestParse_ListAndRecordLiterals(t *testing.T) {
	prog := mustParse(t, `li xs = [1, 2, 3];`)
	decl := prog.Statements[0].(*VarDeclStmt)
	lst, ok := decl.Init.(*ListLit)
	require.True(t, ok)
	assert.Len(t, lst.Elems, 3)

	prog = mustParse(t, `x = {4, 5};`)
	assign := prog.Statements[0].(*ExprStmt).X.(*Assign)
	rec, ok := assign.Value.(*RecordLit)
	require.True(t, ok)
	assert.Len(t, rec.Elems, 2)
}

func TestParse_UseStmt(t *testing.T) {
	prog := mustParse(t, `use helpers;`)
	us, ok := prog.Statements[0].(*UseStmt)
	require.True(t, ok)
	assert.Equal(t, "helpers", us.Module)
}

func TestParse_UnterminatedBlockIsFatal(t *testing.T) {
	p, err := NewParser(`if (a): b = 1;`)
	require.NoError(t, err)
	_, err = p.Parse()
	assert.Error(t, err)
}

func TestParse_UnexpectedTokenIsFatal(t *testing.T) {
	p, err := NewParser(`num a = ;`)
	require.NoError(t, err)
	_, err = p.Parse()
	assert.Error(t, err)
}
