package pipeline

// DefaultPipeline is used when no pipeline file is given.
const DefaultPipeline = `
name: scenario
description: Scale, weed out and filter a small list of numbers.
values: ["1", "2", "2", "3"]
steps:
  - name: times-ten
    map:
      multiply: 10
  - name: drop-thirty
    filterOut: "30"
  - name: twenties
    filter: "20"
  - name: show
    forEach:
      log: debug
`
