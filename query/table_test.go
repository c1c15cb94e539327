package query

import (
	"errors"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var _ = Describe("Materialize", func() {
	var raw *RawQueryResult

	BeforeEach(func() {
		raw = &RawQueryResult{
			ColumnInfo: []ColumnInfo{
				{Name: "page_id", TypeCode: 3},
				{Name: "page_title", TypeCode: 253},
			},
			Rows: [][]interface{}{
				{int64(1), []byte("Foo")},
				{int64(2), []byte("Bar")},
			},
		}
	})

	When("mode is str", func() {
		It("should materialize integers and strings", func() {
			table, err := Materialize(raw, StrModeStr, nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(table.NumColumns()).To(Equal(2))
			Expect(table.NumRows()).To(Equal(2))

			pageID, ok := table.Column("page_id")
			Expect(ok).To(BeTrue())
			Expect(pageID.Type).To(Equal(TypeInt64))
			Expect(pageID.Values).To(Equal([]interface{}{int64(1), int64(2)}))

			pageTitle, ok := table.Column("page_title")
			Expect(ok).To(BeTrue())
			Expect(pageTitle.Type).To(Equal(TypeString))
			Expect(pageTitle.Values).To(Equal([]interface{}{"Foo", "Bar"}))
		})
	})

	When("mode is bytes", func() {
		It("should materialize ambiguous columns as binary", func() {
			table, err := Materialize(raw, StrModeBytes, nil)
			Expect(err).ToNot(HaveOccurred())

			pageTitle, ok := table.Column("page_title")
			Expect(ok).To(BeTrue())
			Expect(pageTitle.Type).To(Equal(TypeBinary))
			Expect(pageTitle.Values).To(Equal([]interface{}{[]byte("Foo"), []byte("Bar")}))
		})
	})

	When("an override is given for a column name", func() {
		It("should win over the mapped type", func() {
			table, err := Materialize(raw, StrModeStr, map[string]SemanticType{
				"page_title": TypeBinary,
			})
			Expect(err).ToNot(HaveOccurred())

			pageTitle, ok := table.Column("page_title")
			Expect(ok).To(BeTrue())
			Expect(pageTitle.Type).To(Equal(TypeBinary))
		})
	})

	When("a row's arity disagrees with the column count", func() {
		It("should fail with a SchemaError", func() {
			raw.Rows = append(raw.Rows, []interface{}{int64(3)})
			_, err := Materialize(raw, StrModeStr, nil)
			Expect(err).To(HaveOccurred())
			var schemaErr *SchemaError
			Expect(errors.As(err, &schemaErr)).To(BeTrue())
		})
	})

	When("a value cannot carry its mapped type", func() {
		It("should fail with a SchemaError naming the column", func() {
			raw.Rows[0][0] = []byte("not a number")
			_, err := Materialize(raw, StrModeStr, nil)
			Expect(err).To(HaveOccurred())
			var schemaErr *SchemaError
			Expect(errors.As(err, &schemaErr)).To(BeTrue())
			Expect(schemaErr.Column).To(Equal("page_id"))
		})
	})

	It("should preserve column order exactly as returned", func() {
		raw.ColumnInfo = []ColumnInfo{
			{Name: "namespace", TypeCode: 3},
			{Name: "namespace", TypeCode: 253},
		}
		raw.Rows = [][]interface{}{{int64(4), []byte("Template")}}
		table, err := Materialize(raw, StrModeStr, nil)
		Expect(err).ToNot(HaveOccurred())

		columns := table.Columns()
		Expect(columns[0].Type).To(Equal(TypeInt64))
		Expect(columns[1].Type).To(Equal(TypeString))

		// Lookup by name resolves to the first match.
		first, ok := table.Column("namespace")
		Expect(ok).To(BeTrue())
		Expect(first.Type).To(Equal(TypeInt64))
	})

	It("should yield an empty table for an empty row set", func() {
		raw.Rows = nil
		table, err := Materialize(raw, StrModeStr, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(table.NumColumns()).To(Equal(2))
		Expect(table.NumRows()).To(Equal(0))
	})

	Context("value casting", func() {
		It("should keep NULL values nil regardless of column type", func() {
			raw.Rows = [][]interface{}{{int64(1), nil}}
			table, err := Materialize(raw, StrModeStr, nil)
			Expect(err).ToNot(HaveOccurred())
			pageTitle, _ := table.Column("page_title")
			Expect(pageTitle.Values[0]).To(BeNil())
		})

		It("should parse decimals from their textual wire form", func() {
			raw = &RawQueryResult{
				ColumnInfo: []ColumnInfo{{Name: "rev_actor", TypeCode: 246}},
				Rows:       [][]interface{}{{[]byte("42.50")}},
			}
			table, err := Materialize(raw, StrModeStr, nil)
			Expect(err).ToNot(HaveOccurred())
			column, _ := table.Column("rev_actor")
			Expect(column.Values[0]).To(Equal(decimal.RequireFromString("42.50")))
		})

		It("should parse datetime and date columns", func() {
			raw = &RawQueryResult{
				ColumnInfo: []ColumnInfo{
					{Name: "created", TypeCode: 7},
					{Name: "day", TypeCode: 10},
				},
				Rows: [][]interface{}{{[]byte("2024-05-01 12:30:00"), []byte("2024-05-01")}},
			}
			table, err := Materialize(raw, StrModeStr, nil)
			Expect(err).ToNot(HaveOccurred())

			created, _ := table.Column("created")
			Expect(created.Values[0]).To(Equal(time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)))
			day, _ := table.Column("day")
			Expect(day.Values[0]).To(Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))
		})

		It("should pass unknown-typed values through unchanged", func() {
			raw = &RawQueryResult{
				ColumnInfo: []ColumnInfo{{Name: "mystery", TypeCode: 0}},
				Rows:       [][]interface{}{{[]byte("whatever")}},
			}
			table, err := Materialize(raw, StrModeStr, nil)
			Expect(err).ToNot(HaveOccurred())
			column, _ := table.Column("mystery")
			Expect(column.Type).To(Equal(TypeUnknown))
			Expect(column.Values[0]).To(Equal([]byte("whatever")))
		})
	})
})
