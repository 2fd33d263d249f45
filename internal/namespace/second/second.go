package second

const X = 2
