package query

import (
	"context"
	"errors"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Fetch", func() {
	var ctx context.Context
	var db *Database
	var mock sqlmock.Sqlmock

	BeforeEach(func() {
		ctx = context.Background()
		engine, m, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
		Expect(err).ToNot(HaveOccurred())
		db = &Database{Project: "zhwiki", Host: "zhwiki", engine: engine}
		mock = m
	})

	pageRows := func() *sqlmock.Rows {
		return sqlmock.NewRowsWithColumnDefinition(
			sqlmock.NewColumn("page_id").OfType("INT", int64(0)),
			sqlmock.NewColumn("page_title").OfType("VARCHAR", []byte(nil)),
		).
			AddRow(int64(1), []byte("Foo")).
			AddRow(int64(2), []byte("Bar"))
	}

	Context("FetchRaw", func() {
		When("the statement is a raw SQL string", func() {
			It("should return column metadata and all rows", func() {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT page_id, page_title FROM page").
					WillReturnRows(pageRows())
				mock.ExpectCommit()

				raw, err := db.FetchRaw(ctx, "SELECT page_id, page_title FROM page")
				Expect(err).ToNot(HaveOccurred())
				Expect(raw.ColumnInfo).To(Equal([]ColumnInfo{
					{Name: "page_id", TypeCode: 3},
					{Name: "page_title", TypeCode: 253},
				}))
				Expect(raw.Rows).To(HaveLen(2))
				Expect(raw.Rows[0]).To(Equal([]interface{}{int64(1), []byte("Foo")}))

				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the statement is a structured builder", func() {
			It("should render it with its arguments", func() {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT page_id, page_title FROM page WHERE page_namespace = ?").
					WithArgs(0).
					WillReturnRows(pageRows())
				mock.ExpectCommit()

				stmt := sq.Select("page_id", "page_title").
					From("page").
					Where(sq.Eq{"page_namespace": 0})
				raw, err := db.FetchRaw(ctx, stmt)
				Expect(err).ToNot(HaveOccurred())
				Expect(raw.Rows).To(HaveLen(2))

				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the server rejects the statement", func() {
			It("should surface a StatementError and release the lease", func() {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT nonsense").
					WillReturnError(errors.New("syntax error"))
				mock.ExpectRollback()

				_, err := db.FetchRaw(ctx, "SELECT nonsense")
				Expect(err).To(HaveOccurred())
				var stmtErr *StatementError
				Expect(errors.As(err, &stmtErr)).To(BeTrue())

				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the statement has an unsupported type", func() {
			It("should fail with a StatementError without touching the engine", func() {
				_, err := db.FetchRaw(ctx, 42)
				Expect(err).To(HaveOccurred())
				var stmtErr *StatementError
				Expect(errors.As(err, &stmtErr)).To(BeTrue())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the result set is empty", func() {
			It("should return the column metadata with no rows", func() {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT page_id, page_title FROM page").
					WillReturnRows(sqlmock.NewRowsWithColumnDefinition(
						sqlmock.NewColumn("page_id").OfType("INT", int64(0)),
						sqlmock.NewColumn("page_title").OfType("VARCHAR", []byte(nil)),
					))
				mock.ExpectCommit()

				raw, err := db.FetchRaw(ctx, "SELECT page_id, page_title FROM page")
				Expect(err).ToNot(HaveOccurred())
				Expect(raw.ColumnInfo).To(HaveLen(2))
				Expect(raw.Rows).To(BeEmpty())

				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Context("Fetch", func() {
		When("mode is left default for a structured statement", func() {
			It("should materialize ambiguous columns as strings", func() {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT page_id, page_title FROM page").
					WillReturnRows(pageRows())
				mock.ExpectCommit()

				stmt := sq.Select("page_id", "page_title").From("page")
				table, err := db.Fetch(ctx, stmt, StrModeDefault, nil)
				Expect(err).ToNot(HaveOccurred())

				pageTitle, ok := table.Column("page_title")
				Expect(ok).To(BeTrue())
				Expect(pageTitle.Type).To(Equal(TypeString))
				Expect(pageTitle.Values).To(Equal([]interface{}{"Foo", "Bar"}))
			})
		})

		When("mode is left default for a raw SQL string", func() {
			It("should materialize ambiguous columns as binary", func() {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT page_id, page_title FROM page").
					WillReturnRows(pageRows())
				mock.ExpectCommit()

				table, err := db.Fetch(ctx, "SELECT page_id, page_title FROM page", StrModeDefault, nil)
				Expect(err).ToNot(HaveOccurred())

				pageTitle, ok := table.Column("page_title")
				Expect(ok).To(BeTrue())
				Expect(pageTitle.Type).To(Equal(TypeBinary))
				Expect(pageTitle.Values).To(Equal([]interface{}{[]byte("Foo"), []byte("Bar")}))
			})
		})

		When("schema overrides are given", func() {
			It("should apply them over the mapped types", func() {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT page_id, page_title FROM page").
					WillReturnRows(pageRows())
				mock.ExpectCommit()

				table, err := db.Fetch(
					ctx,
					"SELECT page_id, page_title FROM page",
					StrModeDefault,
					map[string]SemanticType{"page_title": TypeString},
				)
				Expect(err).ToNot(HaveOccurred())

				pageTitle, ok := table.Column("page_title")
				Expect(ok).To(BeTrue())
				Expect(pageTitle.Type).To(Equal(TypeString))
			})
		})
	})
})
