package pipeline

// The four prompt templates. Wording, placeholders and formatting
// instructions (the DD/MM/AAAA HH:MM:SS date format, the 'Outros'
// fallback category, confirmado = 0) are load-bearing: the finance
// database speaks Portuguese and the replies are expected in the same
// register.

var querySQLPrompt = NewTemplate("query_sql", `
Baseado no schema da tabela abaixo, escreva uma query SQL que responda à pergunta do usuário.
Responda apenas com a query SQL.
Schema: {schema}
Pergunta: {question}
SQL Query:
`)

var queryResponsePrompt = NewTemplate("query_response", `
Baseado no schema da tabela, na pergunta do usuário, na query SQL e na resposta do banco de dados, escreva uma resposta em linguagem natural e amigável. Escreva a data e o horário atuais no formato DD/MM/AAAA HH:MM:SS.
A cada descrição de gasto, separe por enter de uma compra para outra. utilize o formato "Descrição: [descrição], Valor: R$ [valor], Data e Hora: [data_hora] (no formato DD/MM/AAAA HH:MM:SS), Categoria: [categoria]".
Schema: {schema}
Pergunta: {question}
SQL Query: {query}
SQL Response: {response}
Resposta:
`)

var insertSQLPrompt = NewTemplate("insert_sql", `
Baseado no schema da tabela a seguir, crie um comando SQL INSERT para adicionar o seguinte gasto: {question}.
Tente inferir a categoria do gasto (como 'Alimentação', 'Transporte', 'Lazer', etc.) a partir da descrição. Se a categoria não for clara, use 'Outros'.
Use a data e hora fornecida pela mensagem para o campo data_hora (caso ele não informar a data, utilize a função SQL datetime('now', 'localtime') para adicionar com o horário que a mensagem foi recebida) e defina o campo 'confirmado' como 0 (FALSE).
Schema: {schema}
SQL Query:
`)

var confirmationPrompt = NewTemplate("confirmation", `
Você é um assistente de finanças. O usuário pediu para adicionar um gasto, e o comando SQL foi executado com sucesso.
Escreva uma resposta curta e amigável confirmando que o gasto foi adicionado. Caso possível, repita o valor e a descrição do gasto para confirmação.
Pedido Original do Usuário: {question}
`)
